package model

// Descriptions supplies the group docs and test descriptions that go test
// output does not carry.
type Descriptions struct {
	Groups map[string]string `yaml:"groups"`
	Tests  map[string]string `yaml:"tests"`
}

// GroupDoc returns the doc registered for a group key.
func (d Descriptions) GroupDoc(key string) string {
	return d.Groups[key]
}

// TestDescription returns the description registered for a test, trying
// the package-qualified id before the bare id.
func (d Descriptions) TestDescription(pkg, id string) string {
	if pkg != "" {
		if desc, ok := d.Tests[pkg+"."+id]; ok {
			return desc
		}
	}

	return d.Tests[id]
}
