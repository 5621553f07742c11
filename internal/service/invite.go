package service

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"

	"fluxera.app/api/internal/model"
)

var (
	ErrInvalidInvite = errors.New("invalid invite code")
	ErrInviteExpired = errors.New("invite has expired")
)

// EncodeInvite produces the shareable code: base64 of "<unix millis>/<workspace id>".
func EncodeInvite(workspaceID int64, issuedAt time.Time) string {
	raw := strconv.FormatInt(issuedAt.UnixMilli(), 10) + "/" + strconv.FormatInt(workspaceID, 10)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeInvite parses a code and checks it against now. A timestamp that does
// not parse counts as expired.
func DecodeInvite(code string, now time.Time) (model.Invite, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return model.Invite{}, ErrInvalidInvite
	}

	stamp, wsPart, ok := strings.Cut(string(raw), "/")
	if !ok {
		return model.Invite{}, ErrInvalidInvite
	}
	workspaceID, err := strconv.ParseInt(wsPart, 10, 64)
	if err != nil || workspaceID <= 0 {
		return model.Invite{}, ErrInvalidInvite
	}

	millis, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		return model.Invite{}, ErrInviteExpired
	}

	invite := model.Invite{WorkspaceID: workspaceID, IssuedAt: time.UnixMilli(millis)}
	if invite.IsExpired(now) {
		return invite, ErrInviteExpired
	}
	return invite, nil
}
