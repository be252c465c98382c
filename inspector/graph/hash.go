package graph

import (
	"sort"
	"strings"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns highwayhash 64 bit digest of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint returns structural hash of the class record, equal records share a fingerprint
func (c *ClassNode) Fingerprint() (uint64, error) {
	return Hash([]byte(c.canonical()))
}

// canonical returns order independent textual form of the class record
func (c *ClassNode) canonical() string {
	builder := &strings.Builder{}
	builder.WriteString(c.Name)
	builder.WriteString("|")
	builder.WriteString(string(c.Language))
	builder.WriteString("|")
	builder.WriteString(interfaceKey(c.Interface))
	builder.WriteString("|")
	builder.WriteString(implementationKey(c.Implementation))
	return builder.String()
}

func interfaceKey(node *InterfaceNode) string {
	if node == nil {
		return "-"
	}
	builder := &strings.Builder{}
	builder.WriteString(node.ClassName)
	builder.WriteString(":")
	builder.WriteString(node.Superclass)
	builder.WriteString("(")
	builder.WriteString(node.Category)
	builder.WriteString(")<")
	builder.WriteString(sortedJoin(node.Protocols))
	builder.WriteString(">")
	var properties []string
	for _, property := range node.Properties {
		properties = append(properties, property.Type+" "+property.Name)
	}
	builder.WriteString(sortedJoin(properties))
	builder.WriteString("{")
	builder.WriteString(methodsKey(node.Methods))
	builder.WriteString("}")
	return builder.String()
}

func implementationKey(node *ImplementationNode) string {
	if node == nil {
		return "-"
	}
	return node.ClassName + "{" + methodsKey(node.Methods) + "}"
}

func methodsKey(methods []*MethodNode) string {
	var signatures []string
	for _, method := range methods {
		if method == nil {
			continue
		}
		var invokes []string
		for _, invoke := range method.Invokes {
			invokes = append(invokes, invoke.String())
		}
		signatures = append(signatures, method.Signature()+"["+sortedJoin(invokes)+"]")
	}
	return sortedJoin(signatures)
}

func sortedJoin(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return strings.Join(sorted, ";")
}
