package storage

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"

	"github.com/scrawl-party/scrawl-cli/internal/testcommon"
)

func TestLocalStorage(t *testing.T) {
	suite.Run(t, &Suite{})
}

type Suite struct {
	testcommon.Suite
	storage *LocalStorage
}

func (s *Suite) SetupTest() {
	s.storage = NewLocalStorage(s.T().TempDir())
	s.Require().NotNil(s.storage)
	s.Require().NoError(s.storage.Initialize())
}

func (s *Suite) TestLocalPath() {
	localPath := s.T().TempDir()

	storage := NewLocalStorage(localPath)
	s.Require().NotNil(storage)
	s.Require().NoError(storage.Initialize())
	s.Require().Equal(localPath, storage.folder.Path)
}

func (s *Suite) TestPlayerNamePersists() {
	s.Require().Empty(s.storage.PlayerName())

	name := gofakeit.LetterN(6)
	s.Require().NoError(s.storage.SetPlayerName(name))
	s.Require().Equal(name, s.storage.PlayerName())

	// A fresh instance over the same folder reads it back.
	reloaded := NewLocalStorage(s.storage.folder.Path)
	s.Require().NoError(reloaded.Initialize())
	s.Require().Equal(name, reloaded.PlayerName())
}

func (s *Suite) TestResetPlayer() {
	s.Require().NoError(s.storage.SetPlayerName(gofakeit.LetterN(6)))
	s.Require().NoError(s.storage.ResetPlayer())
	s.Require().Empty(s.storage.PlayerName())
}

func (s *Suite) TestCorruptStorageIsCleared() {
	err := s.storage.folder.WriteFile(playerStorageFileName, []byte("not json"))
	s.Require().NoError(err)

	reloaded := NewLocalStorage(s.storage.folder.Path)
	s.Require().NoError(reloaded.Initialize())
	s.Require().Empty(reloaded.PlayerName())
}
