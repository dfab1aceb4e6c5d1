package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	DocumentPeople   = "people"
	DocumentHardware = "hardware"
)

// SkillRating is one entry of a person's skills array.
type SkillRating struct {
	Skill  string
	Rating int
}

// PersonRecord is one element of the people document.
type PersonRecord struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Skills  []SkillRating
}

// HardwareRecord is one element of the hardware document.
type HardwareRecord struct {
	HardwareName      string
	QuantityAvailable int
}

// ErrNotArray is returned for a document that decodes to null instead of a
// JSON array.
var ErrNotArray = errors.New("document is not a JSON array")

// MissingFieldError reports a required key that is absent (or null) in an
// input record.
type MissingFieldError struct {
	Document string
	Index    int
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s[%d]: missing required field %q", e.Document, e.Index, e.Field)
}

// pointer fields tell an absent key apart from a zero value
type skillJSON struct {
	Skill  *string `json:"skill"`
	Rating *int    `json:"rating"`
}

type personJSON struct {
	Name    *string      `json:"name"`
	Company *string      `json:"company"`
	Email   *string      `json:"email"`
	Phone   *string      `json:"phone"`
	Skills  *[]skillJSON `json:"skills"`
}

type hardwareJSON struct {
	HardwareName      *string `json:"hardware_name"`
	QuantityAvailable *int    `json:"quantity_available"`
}

// LoadPeople reads and decodes the people document at path.
func LoadPeople(path string) ([]PersonRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read people document %s: %w", path, err)
	}
	people, err := ParsePeople(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse people document %s: %w", path, err)
	}
	return people, nil
}

// LoadHardware reads and decodes the hardware document at path.
func LoadHardware(path string) ([]HardwareRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hardware document %s: %w", path, err)
	}
	hardware, err := ParseHardware(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hardware document %s: %w", path, err)
	}
	return hardware, nil
}

// ParsePeople decodes a JSON array of people. Skill names are kept byte for
// byte; "Go", "go" and " Go" are three different skills.
func ParsePeople(data []byte) ([]PersonRecord, error) {
	var raw []personJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrNotArray
	}

	people := make([]PersonRecord, 0, len(raw))
	for i, p := range raw {
		missing := func(field string) error {
			return &MissingFieldError{Document: DocumentPeople, Index: i, Field: field}
		}
		switch {
		case p.Name == nil:
			return nil, missing("name")
		case p.Company == nil:
			return nil, missing("company")
		case p.Email == nil:
			return nil, missing("email")
		case p.Phone == nil:
			return nil, missing("phone")
		case p.Skills == nil:
			return nil, missing("skills")
		}

		skills := make([]SkillRating, 0, len(*p.Skills))
		for j, s := range *p.Skills {
			if s.Skill == nil {
				return nil, missing(fmt.Sprintf("skills[%d].skill", j))
			}
			if s.Rating == nil {
				return nil, missing(fmt.Sprintf("skills[%d].rating", j))
			}
			skills = append(skills, SkillRating{Skill: *s.Skill, Rating: *s.Rating})
		}

		people = append(people, PersonRecord{
			Name:    *p.Name,
			Company: *p.Company,
			Email:   *p.Email,
			Phone:   *p.Phone,
			Skills:  skills,
		})
	}
	return people, nil
}

// ParseHardware decodes a JSON array of hardware records.
func ParseHardware(data []byte) ([]HardwareRecord, error) {
	var raw []hardwareJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrNotArray
	}

	hardware := make([]HardwareRecord, 0, len(raw))
	for i, h := range raw {
		if h.HardwareName == nil {
			return nil, &MissingFieldError{Document: DocumentHardware, Index: i, Field: "hardware_name"}
		}
		if h.QuantityAvailable == nil {
			return nil, &MissingFieldError{Document: DocumentHardware, Index: i, Field: "quantity_available"}
		}
		hardware = append(hardware, HardwareRecord{
			HardwareName:      *h.HardwareName,
			QuantityAvailable: *h.QuantityAvailable,
		})
	}
	return hardware, nil
}
