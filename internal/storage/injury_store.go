// Package storage is the persistent roster/injury snapshot store backing
// the injury provider. Everything else in the system is request-scoped;
// injuries are the one dataset refreshed out-of-band and read per request.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Team is one roster team row.
type Team struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;not null"`
	City         string
	Abbreviation string
}

// Player is one rostered player row.
type Player struct {
	ID       uint   `gorm:"primaryKey"`
	TeamID   uint   `gorm:"index;not null"`
	Name     string `gorm:"not null;uniqueIndex:idx_players_team_name,priority:2"`
	Position string
	Team     *Team  `gorm:"foreignKey:TeamID"`
}

// TableName keeps the composite unique index anchored to the team column.
func (Player) TableName() string { return "players" }

// Injury is one current injury designation row.
type Injury struct {
	ID          uint      `gorm:"primaryKey"`
	PlayerID    uint      `gorm:"index;not null"`
	Status      string
	InjuryType  string
	LastUpdated time.Time `gorm:"index"`
	Source      string
	Player      *Player   `gorm:"foreignKey:PlayerID"`
}

// PlayerInjury is the joined read shape handed to the injury provider.
type PlayerInjury struct {
	Player     string
	Position   string
	Status     string
	InjuryType string
}

// InjuryStore wraps the relational store for roster and injury snapshots.
type InjuryStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// snapshotWindow bounds how old a stored injury row may be before reads
// stop trusting it.
const snapshotWindow = 48 * time.Hour

// NewInjuryStore connects to postgres and migrates the schema.
func NewInjuryStore(databaseURL string, logger *logrus.Logger) (*InjuryStore, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Team{}, &Player{}, &Injury{}); err != nil {
		return nil, fmt.Errorf("failed to migrate injury schema: %w", err)
	}

	return &InjuryStore{db: db, logger: logger}, nil
}

// NewInjuryStoreWithDB wraps an existing gorm handle (used by tests).
func NewInjuryStoreWithDB(db *gorm.DB, logger *logrus.Logger) *InjuryStore {
	return &InjuryStore{db: db, logger: logger}
}

// SeedTeams inserts catalog teams that are not present yet.
func (s *InjuryStore) SeedTeams(ctx context.Context, teams []Team) error {
	for _, team := range teams {
		err := s.db.WithContext(ctx).
			Where(Team{Name: team.Name}).
			FirstOrCreate(&team).Error
		if err != nil {
			return fmt.Errorf("failed to seed team %q: %w", team.Name, err)
		}
	}
	return nil
}

// TeamInjuries returns the recent injury rows for one team.
func (s *InjuryStore) TeamInjuries(ctx context.Context, teamName string) ([]PlayerInjury, error) {
	var rows []PlayerInjury
	err := s.db.WithContext(ctx).
		Table("injuries").
		Select("players.name AS player, players.position, injuries.status, injuries.injury_type").
		Joins("JOIN players ON players.id = injuries.player_id").
		Joins("JOIN teams ON teams.id = players.team_id").
		Where("teams.name = ?", teamName).
		Where("injuries.last_updated > ?", time.Now().Add(-snapshotWindow)).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query injuries for %q: %w", teamName, err)
	}
	return rows, nil
}

// RecordInjury upserts a player under a team and replaces the player's
// current injury designation.
func (s *InjuryStore) RecordInjury(ctx context.Context, teamName, playerName, position, status, injuryType, source string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team Team
		if err := tx.Where("name = ?", teamName).First(&team).Error; err != nil {
			return fmt.Errorf("unknown team %q: %w", teamName, err)
		}

		player := Player{TeamID: team.ID, Name: playerName, Position: position}
		if err := tx.Where(Player{TeamID: team.ID, Name: playerName}).
			Assign(Player{Position: position}).
			FirstOrCreate(&player).Error; err != nil {
			return fmt.Errorf("failed to upsert player %q: %w", playerName, err)
		}

		if err := tx.Where("player_id = ?", player.ID).Delete(&Injury{}).Error; err != nil {
			return fmt.Errorf("failed to clear injuries for %q: %w", playerName, err)
		}

		injury := Injury{
			PlayerID:    player.ID,
			Status:      status,
			InjuryType:  injuryType,
			LastUpdated: time.Now(),
			Source:      source,
		}
		if err := tx.Create(&injury).Error; err != nil {
			return fmt.Errorf("failed to record injury for %q: %w", playerName, err)
		}
		return nil
	})
}

// HealthCheck pings the underlying connection.
func (s *InjuryStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
