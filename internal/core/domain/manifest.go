// Package domain contains the core types shared across the engines and adapters.
package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PackageManifest is the parsed package.json of a single package.
// It is a read-only input; smelt never writes manifests back.
type PackageManifest struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Author           Person            `json:"author,omitzero"`
	Main             string            `json:"main,omitzero"`
	Module           string            `json:"module,omitzero"`
	Bundle           string            `json:"bundle,omitzero"`
	Namespace        string            `json:"namespace,omitzero"`
	Standalone       bool              `json:"standalone,omitzero"`
	Dependencies     map[string]string `json:"dependencies,omitzero"`
	PeerDependencies map[string]string `json:"peerDependencies,omitzero"`
}

// UnscopedName returns the manifest name with any npm scope prefix removed,
// e.g. "@family/filters" becomes "filters".
func (m *PackageManifest) UnscopedName() string {
	if i := strings.LastIndex(m.Name, "/"); i >= 0 {
		return m.Name[i+1:]
	}
	return m.Name
}

// Person is an npm-style person field. package.json allows either a plain
// string ("Jane <jane@example.com>") or an object with name/email/url keys.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email,omitzero"`
	URL   string `json:"url,omitzero"`
}

// UnmarshalJSON accepts both the string and the object form.
func (p *Person) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.Name = s
		return nil
	}

	type person Person
	var obj person
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*p = Person(obj)
	return nil
}

// String renders the person in the canonical "Name <email>" form.
func (p Person) String() string {
	if p.Email == "" {
		return p.Name
	}
	return fmt.Sprintf("%s <%s>", p.Name, p.Email)
}
