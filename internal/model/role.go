package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Resource is a workspace resource guarded by role capabilities.
type Resource string

const (
	ResourceProject  Resource = "project"
	ResourceTask     Resource = "task"
	ResourceArtifact Resource = "artifact"
)

// Verb is the kind of operation performed on a resource.
type Verb string

const (
	VerbGet    Verb = "get"
	VerbPost   Verb = "post"
	VerbPut    Verb = "put"
	VerbDelete Verb = "delete"
)

var (
	Resources = []Resource{ResourceProject, ResourceTask, ResourceArtifact}
	Verbs     = []Verb{VerbGet, VerbPost, VerbPut, VerbDelete}
)

func (r Resource) Valid() bool {
	switch r {
	case ResourceProject, ResourceTask, ResourceArtifact:
		return true
	}
	return false
}

func (v Verb) Valid() bool {
	switch v {
	case VerbGet, VerbPost, VerbPut, VerbDelete:
		return true
	}
	return false
}

// Mutating reports whether the verb changes state.
func (v Verb) Mutating() bool {
	return v != VerbGet
}

// Capability is a (resource, verb) pair.
type Capability struct {
	Resource Resource
	Verb     Verb
}

func (c Capability) String() string {
	return string(c.Resource) + ":" + string(c.Verb)
}

// ParseCapability parses the "resource:verb" form produced by Capability.String.
func ParseCapability(s string) (Capability, error) {
	resource, verb, ok := strings.Cut(s, ":")
	if !ok {
		return Capability{}, fmt.Errorf("invalid capability %q", s)
	}
	c := Capability{Resource: Resource(resource), Verb: Verb(verb)}
	if !c.Resource.Valid() || !c.Verb.Valid() {
		return Capability{}, fmt.Errorf("unknown capability %q", s)
	}
	return c, nil
}

// Capabilities maps each capability to whether it is granted. Missing keys are denied.
// It serializes as a JSON object keyed by "resource:verb".
type Capabilities map[Capability]bool

func (c Capabilities) Allows(resource Resource, verb Verb) bool {
	return c[Capability{Resource: resource, Verb: verb}]
}

// Granted returns the granted capabilities in a stable order.
func (c Capabilities) Granted() []Capability {
	out := make([]Capability, 0, len(c))
	for capability, ok := range c {
		if ok {
			out = append(out, capability)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func (c Capabilities) MarshalJSON() ([]byte, error) {
	m := make(map[string]bool, len(c))
	for capability, ok := range c {
		m[capability.String()] = ok
	}
	return json.Marshal(m)
}

func (c *Capabilities) UnmarshalJSON(data []byte) error {
	var m map[string]bool
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := make(Capabilities, len(m))
	for key, ok := range m {
		capability, err := ParseCapability(key)
		if err != nil {
			return err
		}
		out[capability] = ok
	}
	*c = out
	return nil
}

type Role struct {
	ID           int64        `json:"id"`
	WorkspaceID  int64        `json:"workspace_id"`
	Name         string       `json:"name"`
	CanManage    bool         `json:"can_manage"`
	Capabilities Capabilities `json:"capabilities"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (r *Role) Allows(resource Resource, verb Verb) bool {
	if r == nil {
		return false
	}
	return r.Capabilities.Allows(resource, verb)
}
