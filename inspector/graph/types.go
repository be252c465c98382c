package graph

import (
	"strings"
)

// Language identifies the source dialect a node was produced from
type Language string

const (
	LanguageObjC  Language = "objc"
	LanguageSwift Language = "swift"
)

// Location represents a position of a node in the source file
type Location struct {
	Path string `yaml:"path,omitempty"`
	Line int    `yaml:"line,omitempty"`
}

// Param represents a method parameter
type Param struct {
	Label string `yaml:"label,omitempty"` // External label (selector part or argument label)
	Name  string `yaml:"name,omitempty"`  // Internal parameter name
	Type  string `yaml:"type,omitempty"`
}

// Invoke represents a call site found in a method body
type Invoke struct {
	Receiver string `yaml:"receiver,omitempty"`
	Name     string `yaml:"name"`
}

// String returns receiver qualified call name
func (i *Invoke) String() string {
	if i.Receiver == "" {
		return i.Name
	}
	return i.Receiver + "." + i.Name
}

// MethodNode represents a declared or implemented method
type MethodNode struct {
	IsStatic   bool      `yaml:"static,omitempty"`
	Name       string    `yaml:"name"` // Selector (objc) or base name (swift)
	Params     []*Param  `yaml:"params,omitempty"`
	ReturnType string    `yaml:"returnType,omitempty"`
	Invokes    []*Invoke `yaml:"invokes,omitempty"`
	Location   *Location `yaml:"location,omitempty"`
}

// Signature returns method signature without call sites
func (m *MethodNode) Signature() string {
	builder := &strings.Builder{}
	if m.IsStatic {
		builder.WriteString("+ ")
	} else {
		builder.WriteString("- ")
	}
	builder.WriteString(m.Name)
	builder.WriteString("(")
	for i, param := range m.Params {
		if i > 0 {
			builder.WriteString(", ")
		}
		if param.Label != "" {
			builder.WriteString(param.Label)
			builder.WriteString(" ")
		}
		builder.WriteString(param.Name)
		builder.WriteString(" ")
		builder.WriteString(param.Type)
	}
	builder.WriteString(")")
	if m.ReturnType != "" {
		builder.WriteString(" ")
		builder.WriteString(m.ReturnType)
	}
	return builder.String()
}

// Property represents a declared property
type Property struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
}

// InterfaceNode represents declared interface of a class
type InterfaceNode struct {
	ClassName  string        `yaml:"className"`
	Superclass string        `yaml:"superclass,omitempty"`
	Category   string        `yaml:"category,omitempty"`
	Protocols  []string      `yaml:"protocols,omitempty"`
	Properties []*Property   `yaml:"properties,omitempty"`
	Methods    []*MethodNode `yaml:"methods,omitempty"`
	Location   *Location     `yaml:"location,omitempty"`
}

// AddProtocols appends protocols that are not yet declared
func (n *InterfaceNode) AddProtocols(protocols ...string) {
	for _, protocol := range protocols {
		if !n.HasProtocol(protocol) {
			n.Protocols = append(n.Protocols, protocol)
		}
	}
}

// HasProtocol returns true if interface conforms to protocol
func (n *InterfaceNode) HasProtocol(name string) bool {
	for _, candidate := range n.Protocols {
		if candidate == name {
			return true
		}
	}
	return false
}

// Merge folds other declaration of the same class into n.
// The result does not depend on merge order: category and location come from the
// preceding declaration, the primary one (no category) precedes any category.
func (n *InterfaceNode) Merge(other *InterfaceNode) {
	if other == nil {
		return
	}
	if other.precedes(n) {
		n.Category, n.Location = other.Category, other.Location
	}
	if n.Superclass == "" || (other.Superclass != "" && other.Superclass < n.Superclass) {
		n.Superclass = other.Superclass
	}
	n.AddProtocols(other.Protocols...)
	properties := make(map[string]int, len(n.Properties))
	for i, property := range n.Properties {
		properties[property.Name] = i
	}
	for _, property := range other.Properties {
		idx, ok := properties[property.Name]
		if !ok {
			properties[property.Name] = len(n.Properties)
			n.Properties = append(n.Properties, property)
			continue
		}
		if property.Type < n.Properties[idx].Type {
			n.Properties[idx] = property
		}
	}
	methods := make(map[string]bool, len(n.Methods))
	for _, method := range n.Methods {
		methods[method.Signature()] = true
	}
	for _, method := range other.Methods {
		if !methods[method.Signature()] {
			methods[method.Signature()] = true
			n.Methods = append(n.Methods, method)
		}
	}
}

// precedes returns true if n orders before other by category then location
func (n *InterfaceNode) precedes(other *InterfaceNode) bool {
	return precedes(n.Category, n.Location, other.Category, other.Location)
}

func precedes(category string, location *Location, otherCategory string, otherLocation *Location) bool {
	if category != otherCategory {
		return category < otherCategory
	}
	return location.before(otherLocation)
}

// before returns true if l orders before other, nil location orders last
func (l *Location) before(other *Location) bool {
	switch {
	case l == nil:
		return false
	case other == nil:
		return true
	case l.Path != other.Path:
		return l.Path < other.Path
	}
	return l.Line < other.Line
}

// Clone creates a copy of the interface node, slices are copied, elements are shared
func (n *InterfaceNode) Clone() *InterfaceNode {
	ret := *n
	ret.Protocols = append([]string(nil), n.Protocols...)
	ret.Properties = append([]*Property(nil), n.Properties...)
	ret.Methods = append([]*MethodNode(nil), n.Methods...)
	return &ret
}

// ImplementationNode represents implemented methods of a class
type ImplementationNode struct {
	ClassName string        `yaml:"className"`
	Category  string        `yaml:"category,omitempty"`
	Methods   []*MethodNode `yaml:"methods,omitempty"`
	Location  *Location     `yaml:"location,omitempty"`
}

// Clone creates a copy of the implementation node, elements are shared
func (n *ImplementationNode) Clone() *ImplementationNode {
	ret := *n
	ret.Methods = append([]*MethodNode(nil), n.Methods...)
	return &ret
}

// Merge folds other implementation of the same class into n, category and
// location come from the preceding implementation
func (n *ImplementationNode) Merge(other *ImplementationNode) {
	if other == nil {
		return
	}
	if precedes(other.Category, other.Location, n.Category, n.Location) {
		n.Category, n.Location = other.Category, other.Location
	}
	n.AddMethods(other.Methods...)
}

// AddMethods appends methods that are not yet implemented, a method equal in
// signature and call sites to an implemented one is not added again
func (n *ImplementationNode) AddMethods(methods ...*MethodNode) {
	known := make(map[string]bool, len(n.Methods))
	for _, method := range n.Methods {
		known[methodsKey([]*MethodNode{method})] = true
	}
	for _, method := range methods {
		key := methodsKey([]*MethodNode{method})
		if method == nil || known[key] {
			continue
		}
		known[key] = true
		n.Methods = append(n.Methods, method)
	}
}

// ProtocolNode represents protocol declaration
type ProtocolNode struct {
	Name     string        `yaml:"name"`
	Inherits []string      `yaml:"inherits,omitempty"`
	Methods  []*MethodNode `yaml:"methods,omitempty"`
	Location *Location     `yaml:"location,omitempty"`
}

// ClassNode represents canonical class record
type ClassNode struct {
	Name           string              `yaml:"name"`
	Language       Language            `yaml:"language"`
	Interface      *InterfaceNode      `yaml:"interface"`
	Implementation *ImplementationNode `yaml:"implementation,omitempty"`
}

// NewClassNode creates class node joining declaration with optional implementation
func NewClassNode(language Language, iface *InterfaceNode, impl *ImplementationNode) *ClassNode {
	return &ClassNode{
		Name:           iface.ClassName,
		Language:       language,
		Interface:      iface,
		Implementation: impl,
	}
}

// Superclass returns declared superclass
func (c *ClassNode) Superclass() string {
	if c.Interface == nil {
		return ""
	}
	return c.Interface.Superclass
}

// Methods returns implemented methods, or declared ones when class has no implementation
func (c *ClassNode) Methods() []*MethodNode {
	if c.Implementation != nil {
		return c.Implementation.Methods
	}
	if c.Interface != nil {
		return c.Interface.Methods
	}
	return nil
}

// Merge folds other record of the same class into c
func (c *ClassNode) Merge(other *ClassNode) {
	if other == nil || other == c {
		return
	}
	if c.precededBy(other) {
		c.Language = other.Language
	}
	switch {
	case c.Interface == nil:
		c.Interface = other.Interface
	case other.Interface != nil && other.Interface != c.Interface:
		c.Interface = c.Interface.Clone()
		c.Interface.Merge(other.Interface)
	}
	switch {
	case other.Implementation == nil || other.Implementation == c.Implementation:
	case c.Implementation == nil:
		c.Implementation = other.Implementation
	default:
		c.Implementation = c.Implementation.Clone()
		c.Implementation.Merge(other.Implementation)
	}
}

// precededBy returns true if language of other record takes precedence
func (c *ClassNode) precededBy(other *ClassNode) bool {
	switch {
	case other.Interface == nil:
		return false
	case c.Interface == nil:
		return true
	case other.Interface.Category != c.Interface.Category:
		return other.Interface.Category < c.Interface.Category
	}
	return other.Language < c.Language
}
