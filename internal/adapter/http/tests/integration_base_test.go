//go:build integration
// +build integration

package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	dbadapter "lifedash/internal/adapter/db"
	"lifedash/internal/config"
	"lifedash/pkg/translator"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IntegrationSuiteBase owns a throwaway MySQL schema rebuilt from
// db/migrations before every test.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB *sqlx.DB
	DB      *sqlx.DB
	conf    *config.Config
}

func (s *IntegrationSuiteBase) SetupSuite() {
	s.conf = &config.Config{
		DbHost:     envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DbPort:     envOrDefault("MYSQL_PORT", "3306"),
		DbUser:     envOrDefault("MYSQL_ROOT_USER", "root"),
		DbPassword: envOrDefault("MYSQL_ROOT_PASSWORD", "root"),
		DbName:     envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "lifedash")+"_test"),
		DbParams:   "multiStatements=true",
	}

	adminConf := *s.conf
	adminConf.DbName = ""
	adminDB, err := dbadapter.ConnectDB(&adminConf)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", s.conf.DbName))
	s.Require().NoError(err)

	db, err := dbadapter.ConnectDB(s.conf)
	s.Require().NoError(err)
	s.DB = db

	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s.T()), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageId},
	})
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	// Only databases with the _test suffix are dropped.
	if s.adminDB != nil && strings.HasSuffix(s.conf.DbName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.conf.DbName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	migrate(s.T(), s.DB, "down")
	migrate(s.T(), s.DB, "up")
}

// migrate runs every <version>_<name>.<direction>.sql file, oldest first for
// up and newest first for down.
func migrate(t *testing.T, db *sqlx.DB, direction string) {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(projectRoot(t), "db", "migrations", "*."+direction+".sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	sort.Strings(files)
	if direction == "down" {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}

	for _, file := range files {
		content, readErr := os.ReadFile(file)
		require.NoError(t, readErr)
		_, execErr := db.Exec(string(content))
		require.NoError(t, execErr, filepath.Base(file))
	}
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
