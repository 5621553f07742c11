package cache_test

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"fluxera.app/api/internal/cache"
	"fluxera.app/api/internal/model"
)

var _ = Describe("SessionCache", func() {
	var (
		ctx    context.Context
		server *miniredis.Miniredis
		client *redis.Client
		c      cache.SessionCache
		user   *model.User
	)

	BeforeEach(func() {
		var err error
		server, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())
		client = redis.NewClient(&redis.Options{Addr: server.Addr()})
		c = cache.NewSessionCache(client, 15*time.Minute)
		ctx = context.Background()
		user = &model.User{ID: 42, Email: "ada@example.com", Name: "Ada"}
	})

	AfterEach(func() {
		_ = client.Close()
		server.Close()
	})

	It("returns a miss for unknown tokens", func() {
		_, err := c.Get(ctx, "nope")
		Expect(err).To(MatchError(cache.ErrMiss))
	})

	It("round trips a cached user", func() {
		Expect(c.Set(ctx, "tok", user, time.Now().Add(time.Hour))).To(Succeed())

		got, err := c.Get(ctx, "tok")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ID).To(Equal(int64(42)))
		Expect(got.Email).To(Equal("ada@example.com"))
		Expect(got.Name).To(Equal("Ada"))
	})

	It("caps the TTL at the configured cache lifetime", func() {
		Expect(c.Set(ctx, "tok", user, time.Now().Add(30*24*time.Hour))).To(Succeed())
		Expect(server.TTL("session:tok")).To(Equal(15 * time.Minute))
	})

	It("never outlives the session", func() {
		Expect(c.Set(ctx, "tok", user, time.Now().Add(time.Minute))).To(Succeed())
		ttl := server.TTL("session:tok")
		Expect(ttl).To(BeNumerically("<=", time.Minute))
		Expect(ttl).To(BeNumerically(">", 0))

		server.FastForward(2 * time.Minute)
		_, err := c.Get(ctx, "tok")
		Expect(err).To(MatchError(cache.ErrMiss))
	})

	It("skips sessions that already expired", func() {
		Expect(c.Set(ctx, "tok", user, time.Now().Add(-time.Second))).To(Succeed())
		Expect(server.Exists("session:tok")).To(BeFalse())
	})

	It("deletes entries", func() {
		Expect(c.Set(ctx, "tok", user, time.Now().Add(time.Hour))).To(Succeed())
		Expect(c.Delete(ctx, "tok")).To(Succeed())
		_, err := c.Get(ctx, "tok")
		Expect(err).To(MatchError(cache.ErrMiss))
	})
})
