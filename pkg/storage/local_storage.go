package storage

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"

	"github.com/scrawl-party/scrawl-cli/internal/config"
)

const playerStorageFileName = "player.json"

type LocalStorage struct {
	player playerStorage
	folder *configdir.Config
	mutex  sync.RWMutex
}

type playerStorage struct {
	Name string `json:"name"`
}

var _ Service = (*LocalStorage)(nil)

// NewLocalStorage keeps player preferences in localPath, or in the global
// config directory when localPath is empty.
func NewLocalStorage(localPath string) *LocalStorage {
	var folder *configdir.Config
	if localPath != "" {
		folder = &configdir.Config{
			Path: localPath,
			Type: configdir.Local,
		}
	} else {
		configDirs := configdir.New(config.VendorName, config.ApplicationName)
		folder = configDirs.QueryFolders(configdir.Global)[0]
	}

	return &LocalStorage{
		folder: folder,
	}
}

func (s *LocalStorage) Initialize() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.readPlayer()
	config.Logger.Info("storage initialized",
		zap.Any("player", s.player),
		zap.String("path", s.folder.Path),
		zap.Error(err),
	)
	return err
}

func (s *LocalStorage) readPlayer() error {
	if !s.folder.Exists(playerStorageFileName) {
		config.Logger.Info("no player storage found")
		return nil
	}

	data, err := s.folder.ReadFile(playerStorageFileName)
	if err != nil {
		return errors.Wrap(err, "failed to read player data")
	}

	err = json.Unmarshal(data, &s.player)
	if err == nil {
		return nil
	}

	config.Logger.Error("failed to parse player storage, clearing storage", zap.Error(err))

	s.player = playerStorage{}
	if err = s.savePlayerStorage(); err != nil {
		config.Logger.Error("failed to reset player storage", zap.Error(err))
	}

	return nil
}

func (s *LocalStorage) savePlayerStorage() error {
	playerJson, err := json.Marshal(s.player)
	if err != nil {
		return errors.Wrap(err, "failed to marshal player storage")
	}

	err = s.folder.WriteFile(playerStorageFileName, playerJson)
	if err != nil {
		return errors.Wrap(err, "failed to save player storage")
	}

	return nil
}

func (s *LocalStorage) PlayerName() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.player.Name
}

func (s *LocalStorage) SetPlayerName(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.player.Name = name
	return s.savePlayerStorage()
}

func (s *LocalStorage) ResetPlayer() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.player = playerStorage{}
	return s.savePlayerStorage()
}
