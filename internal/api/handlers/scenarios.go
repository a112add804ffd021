package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"nuclear-lcoe/internal/api/models"
	"nuclear-lcoe/internal/config"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler lists bundled scenario files.
type ScenarioHandler struct {
	scenarioDir string
}

func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{scenarioDir: resolveScenarioDir()}
}

// ListScenarios handles GET /api/v1/scenarios.
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Printf("ScenarioHandler: cannot read %s: %v", h.scenarioDir, err)
		// An empty list is still a valid response; the API works with
		// inline parameters even without bundled scenarios.
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		info := models.ScenarioInfo{
			ID:   id,
			Name: id,
			File: e.Name(),
		}
		if cfg, err := config.LoadUnchecked(filepath.Join(h.scenarioDir, e.Name())); err == nil {
			if cfg.Project.Name != "" {
				info.Name = cfg.Project.Name
			}
			info.Country = cfg.Project.Country
			info.Reactor = cfg.Project.ReactorType
		} else {
			log.Printf("ScenarioHandler: skipping metadata for %s: %v", e.Name(), err)
		}
		scenarios = append(scenarios, info)
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
