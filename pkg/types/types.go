// Package types provides the shape of a CloudFormation template as parsed
// from JSON or YAML, plus the resolved form the driver produces.
package types

import "github.com/lex00/cfn-resolve-go/pkg/value"

// Template represents a CloudFormation template before resolution: its
// Parameters, Mappings, Conditions, Resources, and Outputs sections may
// still contain unresolved intrinsic function calls.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion,omitempty" yaml:"AWSTemplateFormatVersion,omitempty"`
	Transform                interface{}            `json:"Transform,omitempty" yaml:"Transform,omitempty"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Metadata                 map[string]interface{} `json:"Metadata,omitempty" yaml:"Metadata,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Mappings                 map[string]value.Value `json:"Mappings,omitempty" yaml:"Mappings,omitempty"`
	Conditions               map[string]value.Value `json:"Conditions,omitempty" yaml:"Conditions,omitempty"`
	Resources                map[string]Resource    `json:"Resources,omitempty" yaml:"Resources,omitempty"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// Parameter represents a CloudFormation parameter declaration. Default may
// itself be, or contain, an intrinsic function call.
type Parameter struct {
	Type                  string      `json:"Type" yaml:"Type"`
	Default               interface{} `json:"Default,omitempty" yaml:"Default,omitempty"`
	Description           string      `json:"Description,omitempty" yaml:"Description,omitempty"`
	AllowedValues         []string    `json:"AllowedValues,omitempty" yaml:"AllowedValues,omitempty"`
	AllowedPattern        string      `json:"AllowedPattern,omitempty" yaml:"AllowedPattern,omitempty"`
	ConstraintDescription string      `json:"ConstraintDescription,omitempty" yaml:"ConstraintDescription,omitempty"`
	MaxLength             int         `json:"MaxLength,omitempty" yaml:"MaxLength,omitempty"`
	MinLength             int         `json:"MinLength,omitempty" yaml:"MinLength,omitempty"`
	MaxValue              float64     `json:"MaxValue,omitempty" yaml:"MaxValue,omitempty"`
	MinValue              float64     `json:"MinValue,omitempty" yaml:"MinValue,omitempty"`
	NoEcho                bool        `json:"NoEcho,omitempty" yaml:"NoEcho,omitempty"`
}

// Resource represents a CloudFormation resource declaration. The driver
// resolves intrinsic calls anywhere inside Properties, Metadata, DependsOn,
// and UpdatePolicy; Type, Condition, and DeletionPolicy are plain strings
// and pass through unchanged.
type Resource struct {
	Type           string                 `json:"Type" yaml:"Type"`
	Properties     map[string]interface{} `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	Metadata       map[string]interface{} `json:"Metadata,omitempty" yaml:"Metadata,omitempty"`
	DependsOn      interface{}            `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	Condition      string                 `json:"Condition,omitempty" yaml:"Condition,omitempty"`
	DeletionPolicy string                 `json:"DeletionPolicy,omitempty" yaml:"DeletionPolicy,omitempty"`
	UpdatePolicy   map[string]interface{} `json:"UpdatePolicy,omitempty" yaml:"UpdatePolicy,omitempty"`
}

// Output represents a CloudFormation output declaration.
type Output struct {
	Description string      `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       interface{} `json:"Value" yaml:"Value"`
	Export      *Export     `json:"Export,omitempty" yaml:"Export,omitempty"`
	Condition   string      `json:"Condition,omitempty" yaml:"Condition,omitempty"`
}

// Export represents an output export configuration.
type Export struct {
	Name interface{} `json:"Name" yaml:"Name"`
}

// ResolvedTemplate is the driver's output: every intrinsic function call
// in Resources and Outputs has been rewritten to its resolved value (or to
// a sentinel, per the resolver's totality guarantee), and Conditions holds
// each condition's pre-evaluated boolean result rather than its original
// Fn::Equals/And/Or/Not expression.
type ResolvedTemplate struct {
	AWSTemplateFormatVersion string
	Description              string
	Conditions               map[string]bool
	Resources                map[string]value.Value
	Outputs                  map[string]value.Value
}
