package handlers

import (
	"log"
	"net/http"

	"github.com/camden-git/hackerdb/models"
	"github.com/camden-git/hackerdb/repository"
)

// UserSkill is one element of a user's skills array.
type UserSkill struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating"`
}

// User is a person together with their rated skills.
type User struct {
	PersonID uint        `json:"person_id"`
	Name     string      `json:"name"`
	Company  string      `json:"company"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Skills   []UserSkill `json:"skills"`
}

type UserHandler struct {
	People repository.PersonRepositoryInterface
}

func toUser(p models.Person) User {
	u := User{
		PersonID: p.ID,
		Name:     p.Name,
		Company:  p.Company,
		Email:    p.Email,
		Phone:    p.Phone,
		Skills:   make([]UserSkill, 0, len(p.Skills)),
	}
	for _, ps := range p.Skills {
		if ps.Skill == nil {
			continue
		}
		u.Skills = append(u.Skills, UserSkill{Skill: ps.Skill.Name, Rating: ps.Rating})
	}
	return u
}

// ListUsers returns every person with their skills, ordered by person_id.
func (uh *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	people, err := uh.People.ListWithSkills()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		writeStoreError(w, "users")
		return
	}

	users := make([]User, 0, len(people))
	for _, p := range people {
		users = append(users, toUser(p))
	}
	writeJSON(w, http.StatusOK, users)
}
