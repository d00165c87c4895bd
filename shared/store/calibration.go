package store

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Calibration representa o esquema do banco para a última calibração
// aplicada a uma fonte de vídeo específica.
type Calibration struct {
	ID         string `gorm:"primaryKey"` // chave da fonte (caminho absoluto ou "pattern")
	MeshFile   string // arquivo de malha em uso quando a calibração foi salva
	Distortion string // "barrel", "pincushion" ou vazio (sem distorção)
	Strength   float32
	UpdatedAt  time.Time // Para controle interno do GORM
}

const CurrentFormatVersion = 1

// Metadata armazena informações globais do banco de calibração.
type Metadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Store encapsula o banco SQLite de calibrações.
type Store struct {
	DB *gorm.DB
}

// Open abre (ou cria) o banco de calibração e roda migrações.
func Open(path string) (*Store, error) {
	// Configuramos o logger para ser silencioso em produção
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&Calibration{}, &Metadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	db.Save(&Metadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})

	log.Printf("[Store] Banco de calibração SQLite aberto: %s", path)
	return &Store{DB: db}, nil
}

// Save faz upsert da calibração de uma fonte.
func (s *Store) Save(cal *Calibration) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("banco de calibração não inicializado")
	}
	if err := s.DB.Save(cal).Error; err != nil {
		log.Printf("[Store] ERRO ao salvar calibração %s: %v", cal.ID, err)
		return err
	}
	return nil
}

// Load busca a calibração salva para uma fonte. Retorna erro se não existir.
func (s *Store) Load(sourceKey string) (*Calibration, error) {
	if s == nil || s.DB == nil {
		return nil, fmt.Errorf("banco de calibração não inicializado")
	}
	var cal Calibration
	if err := s.DB.First(&cal, "id = ?", sourceKey).Error; err != nil {
		return nil, err
	}
	return &cal, nil
}

// Close fecha a conexão com o banco.
func (s *Store) Close() {
	if s == nil || s.DB == nil {
		return
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
