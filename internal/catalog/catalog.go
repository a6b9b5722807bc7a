// Package catalog is the read-only store of job roles and experience levels.
// The catalog is never mutated after construction and may be read
// concurrently.
package catalog

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/mockview/mockview/internal/interview"
)

// Catalog holds the role and level definitions available for interviews.
type Catalog struct {
	roles  []*interview.JobRole
	levels []interview.ExperienceLevel
}

// New builds a catalog from the built-in roles and levels, with custom role
// definitions (loosely-typed maps, typically from configuration) merged over
// the built-ins by id.
func New(custom ...map[string]any) (*Catalog, error) {
	c := &Catalog{
		roles:  builtinRoles(),
		levels: builtinLevels(),
	}

	for _, raw := range custom {
		role, err := DecodeRole(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding custom role: %w", err)
		}

		replaced := false
		for i, existing := range c.roles {
			if existing.ID == role.ID {
				c.roles[i] = role
				replaced = true
				break
			}
		}
		if !replaced {
			c.roles = append(c.roles, role)
		}
	}

	return c, nil
}

// DecodeRole converts a loosely-typed role definition into a JobRole.
func DecodeRole(raw map[string]any) (*interview.JobRole, error) {
	var role interview.JobRole
	if err := mapstructure.Decode(raw, &role); err != nil {
		return nil, err
	}

	if strings.TrimSpace(role.ID) == "" {
		return nil, fmt.Errorf("role id is required")
	}
	if strings.TrimSpace(role.Name) == "" {
		role.Name = role.ID
	}
	if len(role.QuestionCategories) == 0 {
		return nil, fmt.Errorf("role %q has no question categories", role.ID)
	}
	for _, category := range role.QuestionCategories {
		if category.Weight <= 0 || category.Weight > 1 {
			return nil, fmt.Errorf("role %q category %q: weight must be in (0,1]", role.ID, category.Name)
		}
	}

	return &role, nil
}

// RoleByID returns the role with the given id.
func (c *Catalog) RoleByID(id string) (*interview.JobRole, error) {
	key := normalize(id)
	for _, role := range c.roles {
		if normalize(role.ID) == key {
			return role, nil
		}
	}

	return nil, &interview.InvalidInputError{Field: "role", Value: id, Valid: c.RoleIDs()}
}

// RoleByName returns the role with the given display name or id,
// case-insensitive and trimmed.
func (c *Catalog) RoleByName(name string) (*interview.JobRole, error) {
	key := normalize(name)
	for _, role := range c.roles {
		if normalize(role.Name) == key || normalize(role.ID) == key {
			return role, nil
		}
	}

	return nil, &interview.InvalidInputError{Field: "role", Value: name, Valid: c.RoleIDs()}
}

// Level returns the experience level with the given name, case-insensitive
// and trimmed.
func (c *Catalog) Level(name string) (interview.ExperienceLevel, error) {
	key := normalize(name)
	for _, level := range c.levels {
		if normalize(level.Level) == key {
			return level, nil
		}
	}

	return interview.ExperienceLevel{}, &interview.InvalidInputError{Field: "level", Value: name, Valid: c.LevelNames()}
}

// IsValidRole reports whether the given id or name resolves to a role.
func (c *Catalog) IsValidRole(idOrName string) bool {
	_, err := c.RoleByName(idOrName)
	return err == nil
}

// IsValidLevel reports whether the given name resolves to a level.
func (c *Catalog) IsValidLevel(name string) bool {
	_, err := c.Level(name)
	return err == nil
}

// RoleIDs returns the ids of every known role.
func (c *Catalog) RoleIDs() []string {
	ids := make([]string, 0, len(c.roles))
	for _, role := range c.roles {
		ids = append(ids, role.ID)
	}
	return ids
}

// LevelNames returns the names of every known level.
func (c *Catalog) LevelNames() []string {
	names := make([]string, 0, len(c.levels))
	for _, level := range c.levels {
		names = append(names, level.Level)
	}
	return names
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
