package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/camden-git/hackerdb/models"
	"github.com/camden-git/hackerdb/repository"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type SkillHandler struct {
	Skills repository.SkillRepositoryInterface
}

func (sh *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := sh.Skills.ListAll()
	if err != nil {
		log.Printf("Error listing skills: %v", err)
		writeStoreError(w, "skills")
		return
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	writeJSON(w, http.StatusOK, skills)
}

// GetSkill looks a skill up by its exact, case-sensitive name.
func (sh *SkillHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "skill")
	// chi routes on RawPath when it is set, leaving the param escaped
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			WriteAPIError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid skill name")
			return
		}
		name = unescaped
	}
	if name == "" {
		WriteAPIError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid skill name")
		return
	}

	skill, err := sh.Skills.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteAPIError(w, http.StatusNotFound, ErrCodeNotFound, "Skill not found")
			return
		}
		log.Printf("Error getting skill %q: %v", name, err)
		writeStoreError(w, "skill")
		return
	}
	writeJSON(w, http.StatusOK, skill)
}
