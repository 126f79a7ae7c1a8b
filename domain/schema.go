package domain

import "github.com/invopop/jsonschema"

// Typed manifest shape, used to publish the JSON schema clients can
// validate against before posting. Ingestion itself stays generic (see
// Manifest) so unknown fields survive the round trip.

// ManifestMetadata describes a manifest's metadata section.
type ManifestMetadata struct {
	Name        string `json:"name" jsonschema_description:"The name of the agent or application."`
	Namespace   string `json:"namespace" jsonschema_description:"The namespace the entity belongs to."`
	Description string `json:"description" jsonschema_description:"A brief description of the entity."`
	ID          string `json:"id,omitempty" jsonschema_description:"Server-assigned identifier. Absent on input."`
	RatingsID   string `json:"ratings_id,omitempty" jsonschema_description:"Server-assigned ratings record identifier. Absent on input."`
}

// ParameterProperty describes one entry in a parameters schema.
type ParameterProperty struct {
	Type        string `json:"type" jsonschema_description:"JSON type of the parameter."`
	Description string `json:"description" jsonschema_description:"What the parameter means."`
}

// ManifestParameters follows the OpenAI function-calling parameter shape.
type ManifestParameters struct {
	Type                 string                       `json:"type" jsonschema_description:"Always 'object'."`
	Properties           map[string]ParameterProperty `json:"properties" jsonschema_description:"Property names and their specifications."`
	Required             []string                     `json:"required" jsonschema_description:"Names of required properties."`
	AdditionalProperties bool                         `json:"additionalProperties" jsonschema_description:"Whether extra properties are allowed."`
}

// ManifestOutput describes the entity's output contract.
type ManifestOutput struct {
	Type        string `json:"type" jsonschema_description:"JSON type of the output."`
	Description string `json:"description" jsonschema_description:"What the output contains."`
}

// ManifestSpec describes a manifest's spec section.
type ManifestSpec struct {
	Type        string             `json:"type" jsonschema:"enum=agent,enum=application" jsonschema_description:"Entity kind."`
	Lifecycle   string             `json:"lifecycle" jsonschema_description:"Lifecycle stage, e.g. 'stable'."`
	Owner       string             `json:"owner" jsonschema_description:"Email of the owner."`
	AccessLevel string             `json:"access_level" jsonschema:"enum=PUBLIC,enum=PRIVATE" jsonschema_description:"Access level."`
	Category    string             `json:"category" jsonschema_description:"Category the entity belongs to."`
	URL         string             `json:"url" jsonschema_description:"Endpoint where the entity can be reached."`
	Parameters  ManifestParameters `json:"parameters" jsonschema_description:"Input parameter specification."`
	Output      ManifestOutput     `json:"output" jsonschema_description:"Output specification."`
}

// ManifestDocument is the complete manifest shape.
type ManifestDocument struct {
	Metadata ManifestMetadata `json:"metadata" jsonschema_description:"Identity and descriptive metadata."`
	Spec     ManifestSpec     `json:"spec" jsonschema_description:"Functional specification."`
}

// ManifestJSONSchema reflects the manifest shape into a JSON schema.
// Additional properties are disallowed and definitions are inlined rather
// than referenced.
func ManifestJSONSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(&ManifestDocument{})
}
