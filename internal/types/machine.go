package types

// Machine is the canonical record produced by the extraction engine.
type Machine struct {
	// Brand is the vendor name, constant per adapter.
	Brand string `json:"brand"`

	// Name is the extracted machine name, optionally prefixed with the
	// adapter's series label.
	Name string `json:"name"`

	// ImageURL is an absolute URL, or empty when no image was found.
	// Never a bare relative path.
	ImageURL string `json:"image_url"`

	// Detail holds adapter-specific extra fields (type, price, code,
	// name_kor, ...). Keys vary per adapter and are reconciled by the
	// merge step.
	Detail map[string]any `json:"detail,omitempty"`
}

// Valid reports whether the record satisfies the identity invariant:
// non-empty brand and name.
func (m *Machine) Valid() bool {
	return m.Brand != "" && m.Name != ""
}

// DetailString retrieves a detail field as a string.
func (m *Machine) DetailString(key string) string {
	if m.Detail == nil {
		return ""
	}
	s, _ := m.Detail[key].(string)
	return s
}

// SetDetail sets a detail field, allocating the map on first use.
func (m *Machine) SetDetail(key string, value any) {
	if m.Detail == nil {
		m.Detail = make(map[string]any)
	}
	m.Detail[key] = value
}

// Clone creates a deep copy of the record.
func (m *Machine) Clone() Machine {
	clone := Machine{
		Brand:    m.Brand,
		Name:     m.Name,
		ImageURL: m.ImageURL,
	}
	if m.Detail != nil {
		clone.Detail = make(map[string]any, len(m.Detail))
		for k, v := range m.Detail {
			clone.Detail[k] = v
		}
	}
	return clone
}
