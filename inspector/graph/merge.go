package graph

import "sort"

// ImplementationNodes represents implementation nodes collected from many files
type ImplementationNodes []*ImplementationNode

// Merged groups implementation nodes by class name, methods of the same class are concatenated in encounter order
func (n ImplementationNodes) Merged() map[string]*ImplementationNode {
	result := make(map[string]*ImplementationNode, len(n))
	for _, node := range n {
		if node == nil {
			continue
		}
		if existing, ok := result[node.ClassName]; ok {
			existing.Methods = append(existing.Methods, node.Methods...)
			if node.Location.before(existing.Location) {
				existing.Location = node.Location
			}
			continue
		}
		merged := node.Clone()
		merged.Category = ""
		result[node.ClassName] = merged
	}
	return result
}

// Classes represents class records unique by name
type Classes struct {
	Nodes []*ClassNode
	index map[string]int
}

// Merge adds nodes, a node whose name is already present is folded into the existing record
func (c *Classes) Merge(nodes ...*ClassNode) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if idx, ok := c.index[node.Name]; ok {
			c.Nodes[idx].Merge(node)
			continue
		}
		c.Nodes = append(c.Nodes, node)
		c.index[node.Name] = len(c.Nodes) - 1
	}
}

// Lookup returns class record by name
func (c *Classes) Lookup(name string) *ClassNode {
	if idx, ok := c.index[name]; ok && idx < len(c.Nodes) {
		return c.Nodes[idx]
	}
	return nil
}

// Len returns number of class records
func (c *Classes) Len() int {
	return len(c.Nodes)
}

// Distinct removes structurally equal class records, the first occurrence is kept.
// Fingerprints only bucket records, equality is decided on the canonical form.
func Distinct(nodes []*ClassNode) []*ClassNode {
	seen := make(map[uint64][]string, len(nodes))
	result := make([]*ClassNode, 0, len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		canonical := node.canonical()
		fingerprint, err := Hash([]byte(canonical))
		if err != nil {
			result = append(result, node)
			continue
		}
		if containsString(seen[fingerprint], canonical) {
			continue
		}
		seen[fingerprint] = append(seen[fingerprint], canonical)
		result = append(result, node)
	}
	return result
}

// Sort orders class records by name, then by declaration precedence and language
func Sort(nodes []*ClassNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		left, right := nodes[i], nodes[j]
		if left.Name != right.Name {
			return left.Name < right.Name
		}
		if right.precededBy(left) {
			return true
		}
		if left.precededBy(right) {
			return false
		}
		if left.Interface != nil && right.Interface != nil {
			return left.Interface.Location.before(right.Interface.Location)
		}
		return false
	})
}

func containsString(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
