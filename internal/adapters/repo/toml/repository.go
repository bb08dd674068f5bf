package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/memory-garden/internal/domain"
	"github.com/bnema/memory-garden/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	MemoriesPathKey = "memories.path"

	memoriesFileMode   = 0o600
	memoriesDirMode    = 0o700
	memoriesConfigDir  = ".memory-garden"
	memoriesConfigFile = "memories.toml"
	tempFilePattern    = ".memories-*.toml.tmp"
)

// Source is an offline MemorySource backed by a TOML file.
type Source struct {
	memoriesPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.MemorySource = (*Source)(nil)

func NewSource(cfg *viper.Viper) (*Source, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	memoriesPath := cfg.GetString(MemoriesPathKey)
	if memoriesPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		memoriesPath = filepath.Join(homeDir, memoriesConfigDir, memoriesConfigFile)
	}

	memoriesPath, err := normalizeMemoriesPath(memoriesPath)
	if err != nil {
		return nil, err
	}

	return &Source{memoriesPath: memoriesPath, mu: lockForPath(memoriesPath)}, nil
}

func (s *Source) Path() string {
	return s.memoriesPath
}

// List returns the memories of userID. Records without a user id belong to everyone.
func (s *Source) List(ctx context.Context, userID domain.UserID) ([]domain.Memory, error) {
	return s.Search(ctx, domain.SearchQuery{UserID: userID})
}

func (s *Source) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Memory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}

	memories := make([]domain.Memory, 0, len(file.Memories))
	for _, entry := range file.Memories {
		memory := fromSchema(entry)
		if query.Matches(memory) {
			memories = append(memories, memory)
		}
	}

	return memories, nil
}

// Replace overwrites the file with memories.
func (s *Source) Replace(ctx context.Context, memories []domain.Memory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file := fileSchema{Memories: make([]memorySchema, 0, len(memories))}
	for _, memory := range memories {
		file.Memories = append(file.Memories, toSchema(memory))
	}

	return s.writeSchema(file)
}

func (s *Source) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.memoriesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, fmt.Errorf("%w: %s", domain.ErrMemoriesNotFound, s.memoriesPath)
		}
		return fileSchema{}, fmt.Errorf("read memories file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode memories file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeMemoriesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve memories path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (s *Source) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.memoriesPath), memoriesDirMode); err != nil {
		return fmt.Errorf("create memories directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode memories file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.memoriesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp memories file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp memories file: %w", err)
	}

	if err := tempFile.Chmod(memoriesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp memories file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp memories file: %w", err)
	}

	if err := os.Rename(tempName, s.memoriesPath); err != nil {
		return fmt.Errorf("replace memories file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(memory domain.Memory) memorySchema {
	var position []float64
	if memory.Position != nil {
		position = []float64{memory.Position[0], memory.Position[1], memory.Position[2]}
	}

	return memorySchema{
		ID:          int64(memory.ID),
		UserID:      int64(memory.UserID),
		Title:       memory.Title,
		Desc:        memory.Desc,
		CreatedAt:   memory.CreatedAt,
		Emotion:     memory.Emotion,
		ModelPath:   memory.ModelPath,
		MediaPath:   memory.MediaPath,
		MediaType:   memory.MediaType,
		UnlockAtISO: memory.UnlockAtISO,
		Position:    position,
	}
}

func fromSchema(entry memorySchema) domain.Memory {
	memory := domain.Memory{
		ID:          domain.MemoryID(entry.ID),
		UserID:      domain.UserID(entry.UserID),
		Title:       entry.Title,
		Desc:        entry.Desc,
		CreatedAt:   entry.CreatedAt,
		Emotion:     entry.Emotion,
		ModelPath:   entry.ModelPath,
		MediaPath:   entry.MediaPath,
		MediaType:   entry.MediaType,
		UnlockAtISO: entry.UnlockAtISO,
	}

	if len(entry.Position) == 3 {
		memory.Position = &domain.Vec3{entry.Position[0], entry.Position[1], entry.Position[2]}
	}

	return memory
}
