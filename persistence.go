package evolve

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

// Persistence stores populations, their individuals, and per-generation run
// history in sqlite. The core operators never touch it; it is the optional
// outer shell the cmd tools drive.
type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	var pragmas strings.Builder
	pragma_count := len(config.SQLitePragmas) - 1
	for i, prag := range config.SQLitePragmas {
		pragmas.WriteString(fmt.Sprintf("_pragma=%s", prag))
		if i < pragma_count {
			pragmas.WriteRune('&')
		}
	}

	var options strings.Builder
	option_count := len(config.SQLiteOptions) - 1
	for i, opt := range config.SQLiteOptions {
		options.WriteString(opt)
		if i < option_count {
			options.WriteRune('&')
		}
	}

	var path strings.Builder
	path.WriteString(filepath.Join(config.Path, config.Name))
	if pragmas.Len() > 0 {
		path.WriteRune('?')
		path.WriteString(pragmas.String())
		if options.Len() > 0 {
			path.WriteRune('&')
			path.WriteString(options.String())
		}
	} else if options.Len() > 0 {
		path.WriteRune('?')
		path.WriteString(options.String())
	}

	db, err := gorm.Open(sqlite.Open(path.String()), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true, CreateBatchSize: 1000})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	if err := p.DB.AutoMigrate(
		&Population{},
		&Individual{},
		&GenerationStat{},
	); err != nil {
		return err
	}

	return nil
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Fatalf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

// Create persists a new population and its individuals, returning the
// assigned population id.
func (p *Persistence) Create(pop *Population) (uint, error) {
	if pop == nil {
		return 0, fmt.Errorf("Population cannot be nil")
	}

	if result := p.DB.Create(pop); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return pop.ID, nil
}

// SavePopulation replaces a persisted population's membership with the
// current one. Individual rows are rewritten wholesale; generation advances
// with the population.
func (p *Persistence) SavePopulation(pop *Population) error {
	if pop == nil {
		return fmt.Errorf("Population cannot be nil")
	}
	if pop.ID == 0 {
		_, err := p.Create(pop)
		return err
	}

	return p.DB.Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("population_id = ?", pop.ID).Delete(&Individual{}); result.Error != nil {
			return fmt.Errorf("Failed to clear individuals for population %d: %w", pop.ID, result.Error)
		}
		for _, ind := range pop.Individuals {
			ind.ID = 0
			ind.PopulationID = pop.ID
		}
		if len(pop.Individuals) > 0 {
			if result := tx.Create(&pop.Individuals); result.Error != nil {
				return fmt.Errorf("Failed to save individuals: %w", result.Error)
			}
		}
		if result := tx.Model(&Population{}).Where("id = ?", pop.ID).
			Update("generation", pop.Generation); result.Error != nil {
			return fmt.Errorf("Failed to update population %d: %w", pop.ID, result.Error)
		}
		return nil
	})
}

// LoadPopulation rehydrates a persisted population under the caller's
// config. Fitness functions are not persistable, so the config must carry
// one; cached fitness values come back from storage untouched.
func (p *Persistence) LoadPopulation(id uint, config *IndividualConfig) (*Population, error) {
	pop, err := NewPopulation(config)
	if err != nil {
		return nil, err
	}

	if result := p.DB.First(pop, id); result.Error != nil {
		return nil, fmt.Errorf("Failed to load population %d: %w", id, result.Error)
	}

	if result := p.DB.Where("population_id = ?", id).Order("id").
		Find(&pop.Individuals); result.Error != nil {
		return nil, fmt.Errorf("Failed to load individuals for population %d: %w", id, result.Error)
	}

	return pop, nil
}

// SaveStat appends one generation's run-history row.
func (p *Persistence) SaveStat(stat *GenerationStat) error {
	if result := p.DB.Create(stat); result.Error != nil {
		return fmt.Errorf("Failed to save generation stat: %w", result.Error)
	}
	return nil
}

// LoadStats returns a population's run history in generation order.
func (p *Persistence) LoadStats(populationID uint) ([]*GenerationStat, error) {
	var stats []*GenerationStat
	if result := p.DB.Where("population_id = ?", populationID).
		Order("generation").Find(&stats); result.Error != nil {
		return nil, fmt.Errorf("Failed to load stats for population %d: %w", populationID, result.Error)
	}
	return stats, nil
}
