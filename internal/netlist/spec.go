package netlist

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Spec is the top-level netlist description.
type Spec struct {
	Component  string          `yaml:"component" json:"component"`
	Ports      []PortSpec      `yaml:"ports,omitempty" json:"ports,omitempty"`
	Cells      []CellSpec      `yaml:"cells,omitempty" json:"cells,omitempty"`
	Groups     []GroupSpec     `yaml:"groups,omitempty" json:"groups,omitempty"`
	CombGroups []CombGroupSpec `yaml:"comb_groups,omitempty" json:"comb_groups,omitempty"`
	Continuous []AssignSpec    `yaml:"continuous,omitempty" json:"continuous,omitempty"`
	Control    *ControlSpec    `yaml:"control,omitempty" json:"control,omitempty"`
}

// PortSpec describes one port of a cell or of the component signature.
type PortSpec struct {
	Name      string `yaml:"name" json:"name"`
	Width     uint64 `yaml:"width" json:"width"`
	Direction string `yaml:"direction" json:"direction"`
}

// ParamSpec is one primitive parameter binding. Bindings are a list, not a
// map, so declaration order survives decoding.
type ParamSpec struct {
	Name  string `yaml:"name" json:"name"`
	Value uint64 `yaml:"value" json:"value"`
}

// ConstantSpec describes a constant cell.
type ConstantSpec struct {
	Value uint64 `yaml:"value" json:"value"`
	Width uint64 `yaml:"width" json:"width"`
}

// CellSpec describes one instantiated cell. Exactly one of Primitive,
// SubComponent or Constant must be set.
type CellSpec struct {
	Name         string        `yaml:"name" json:"name"`
	Primitive    string        `yaml:"primitive,omitempty" json:"primitive,omitempty"`
	Params       []ParamSpec   `yaml:"params,omitempty" json:"params,omitempty"`
	SubComponent string        `yaml:"component,omitempty" json:"component,omitempty"`
	Constant     *ConstantSpec `yaml:"constant,omitempty" json:"constant,omitempty"`
	Ref          bool          `yaml:"ref,omitempty" json:"ref,omitempty"`
	Ports        []PortSpec    `yaml:"ports,omitempty" json:"ports,omitempty"`
}

// AssignSpec describes one guarded assignment. Dst and Src are port paths
// ("cell.port", "group.hole", "this.port", or a bare hole name inside a
// group). Guard is empty for an unconditional assignment, a port path for a
// truthiness guard, or a port path prefixed with "!" for its negation;
// richer guard trees are built programmatically, not from netlist text.
type AssignSpec struct {
	Dst   string `yaml:"dst" json:"dst"`
	Src   string `yaml:"src" json:"src"`
	Guard string `yaml:"guard,omitempty" json:"guard,omitempty"`
}

// GroupSpec describes one group. The go and done holes are created
// implicitly; assignments may reference them by bare name.
type GroupSpec struct {
	Name        string       `yaml:"name" json:"name"`
	Assignments []AssignSpec `yaml:"assignments,omitempty" json:"assignments,omitempty"`
}

// CombGroupSpec describes one combinational group.
type CombGroupSpec struct {
	Name        string       `yaml:"name" json:"name"`
	Assignments []AssignSpec `yaml:"assignments,omitempty" json:"assignments,omitempty"`
}

// InvokeBindSpec is one name=port binding of an invoke.
type InvokeBindSpec struct {
	Name string `yaml:"name" json:"name"`
	Port string `yaml:"port" json:"port"`
}

// InvokeSpec describes an invoke control node.
type InvokeSpec struct {
	Cell    string           `yaml:"cell" json:"cell"`
	Inputs  []InvokeBindSpec `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Outputs []InvokeBindSpec `yaml:"outputs,omitempty" json:"outputs,omitempty"`
	Cond    string           `yaml:"cond,omitempty" json:"cond,omitempty"`
}

// IfSpec describes an if control node.
type IfSpec struct {
	Port string       `yaml:"port" json:"port"`
	Cond string       `yaml:"cond,omitempty" json:"cond,omitempty"`
	Then *ControlSpec `yaml:"then,omitempty" json:"then,omitempty"`
	Else *ControlSpec `yaml:"else,omitempty" json:"else,omitempty"`
}

// WhileSpec describes a while control node.
type WhileSpec struct {
	Port string       `yaml:"port" json:"port"`
	Cond string       `yaml:"cond,omitempty" json:"cond,omitempty"`
	Body *ControlSpec `yaml:"body,omitempty" json:"body,omitempty"`
}

// ControlSpec describes one control node; exactly one field should be set.
// A nil ControlSpec is the empty program.
type ControlSpec struct {
	Seq    []ControlSpec `yaml:"seq,omitempty" json:"seq,omitempty"`
	Par    []ControlSpec `yaml:"par,omitempty" json:"par,omitempty"`
	If     *IfSpec       `yaml:"if,omitempty" json:"if,omitempty"`
	While  *WhileSpec    `yaml:"while,omitempty" json:"while,omitempty"`
	Invoke *InvokeSpec   `yaml:"invoke,omitempty" json:"invoke,omitempty"`
	Enable string        `yaml:"enable,omitempty" json:"enable,omitempty"`
	Empty  bool          `yaml:"empty,omitempty" json:"empty,omitempty"`
}

// Load reads a netlist description from disk, choosing the decoder by file
// extension: .yaml/.yml or .cue.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read netlist: %w", err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return LoadYAML(data)
	case ".cue":
		return LoadCUE(path, data)
	default:
		return nil, fmt.Errorf("unrecognized netlist extension %q: want .yaml, .yml or .cue", ext)
	}
}

// LoadYAML decodes a YAML netlist description.
func LoadYAML(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode netlist yaml: %w", err)
	}
	if spec.Component == "" {
		return nil, fmt.Errorf("netlist is missing a component name")
	}
	return &spec, nil
}

// LoadCUE compiles a CUE netlist description and decodes it into a Spec.
func LoadCUE(path string, data []byte) (*Spec, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile netlist cue: %w", err)
	}
	var spec Spec
	if err := v.Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode netlist cue: %w", err)
	}
	if spec.Component == "" {
		return nil, fmt.Errorf("netlist is missing a component name")
	}
	return &spec, nil
}
