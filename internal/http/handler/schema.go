package handler

import (
	"net/http"
	"reflect"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"fluxera.app/api/internal/http/dto"
	"fluxera.app/api/internal/model"
)

// requestBodies are the JSON request bodies published under /api/schemas/:name.
var requestBodies = map[string]any{
	"register":           dto.RegisterRequest{},
	"login":              dto.LoginRequest{},
	"role":               dto.RoleRequest{},
	"member":             dto.CreateMemberRequest{},
	"member-role":        dto.UpdateMemberRequest{},
	"project":            dto.ProjectRequest{},
	"feature":            dto.FeatureRequest{},
	"api-link":           dto.APILinkRequest{},
	"artifact":           dto.CreateArtifactRequest{},
	"documentation-chat": dto.DocumentationChatRequest{},
}

type SchemaHandler struct {
	schemas map[string]*jsonschema.Schema
}

func NewSchemaHandler() *SchemaHandler {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    mapType,
	}

	schemas := make(map[string]*jsonschema.Schema, len(requestBodies))
	for name, body := range requestBodies {
		schemas[name] = reflector.Reflect(body)
	}
	return &SchemaHandler{schemas: schemas}
}

func (h *SchemaHandler) List(c *gin.Context) {
	names := make([]string, 0, len(h.schemas))
	for name := range h.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	respondOK(c, names)
}

func (h *SchemaHandler) Get(c *gin.Context) {
	schema, ok := h.schemas[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "schema not found"})
		return
	}
	respondOK(c, schema)
}

// mapType describes capability maps by their wire form: "resource:verb" keys with boolean values.
func mapType(t reflect.Type) *jsonschema.Schema {
	if t != reflect.TypeOf(model.Capabilities{}) {
		return nil
	}
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          "Granted capabilities keyed by resource:verb",
		PropertyNames:        &jsonschema.Schema{Pattern: "^(project|task|artifact):(get|post|put|delete)$"},
		AdditionalProperties: &jsonschema.Schema{Type: "boolean"},
	}
}
