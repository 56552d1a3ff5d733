package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"LOG_LEVEL", "LOG_PRETTY", "MESSAGE_LIMIT",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_ARCHIVE_TTL",
		"DISCORD_TOKEN", "DISCORD_CHANNEL_ID",
	} {
		s.T().Setenv(key, "")
		os.Unsetenv(key)
	}
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("info", cfg.LogLevel)
	s.False(cfg.LogPretty)
	s.Equal(0, cfg.MessageLimit)
	s.False(cfg.ArchiveEnabled())
	s.False(cfg.PublishEnabled())
}

func (s *ConfigTestSuite) TestLoad_Environment() {
	s.T().Setenv("LOG_LEVEL", "debug")
	s.T().Setenv("MESSAGE_LIMIT", "1000")
	s.T().Setenv("REDIS_ADDR", "localhost:6379")
	s.T().Setenv("REDIS_DB", "2")
	s.T().Setenv("REDIS_ARCHIVE_TTL", "720h")
	s.T().Setenv("DISCORD_TOKEN", "token")
	s.T().Setenv("DISCORD_CHANNEL_ID", "1234")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("debug", cfg.LogLevel)
	s.Equal(1000, cfg.MessageLimit)
	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal(720*time.Hour, cfg.Redis.ArchiveTTL)
	s.True(cfg.ArchiveEnabled())
	s.True(cfg.PublishEnabled())
}

func (s *ConfigTestSuite) TestLoad_EnvFile() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("REDIS_ADDR=redis:6379\nLOG_PRETTY=true\n"), 0o600))
	s.T().Cleanup(func() {
		os.Unsetenv("REDIS_ADDR")
		os.Unsetenv("LOG_PRETTY")
	})

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal("redis:6379", cfg.Redis.Addr)
	s.True(cfg.LogPretty)
}

func (s *ConfigTestSuite) TestLoad_MissingEnvFileIsIgnored() {
	_, err := Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.NoError(err)
}

func (s *ConfigTestSuite) TestLoad_NegativeLimit() {
	s.T().Setenv("MESSAGE_LIMIT", "-1")

	_, err := Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestLoad_InvalidNumber() {
	s.T().Setenv("REDIS_DB", "two")

	_, err := Load()
	s.Error(err)
}
