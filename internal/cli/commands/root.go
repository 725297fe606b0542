package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"paranoid-users/internal/core/bootstrap"
	"paranoid-users/internal/core/config"
	"paranoid-users/internal/core/logger"
	"paranoid-users/internal/service"
)

// env 每次执行命令时按 --config 装配
type env struct {
	cfgPath string
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	cleanup []func()
}

func (e *env) load(cmd *cobra.Command) error {
	e.close()
	cfg, err := config.Read(e.cfgPath)
	if err != nil {
		return err
	}
	e.cfg = cfg
	var sync func()
	e.log, sync = logger.Build(logger.Options{
		Level:  cfg.Log.Level,
		Output: zapcore.AddSync(cmd.ErrOrStderr()),
	})
	e.cleanup = append(e.cleanup, sync)
	return nil
}

func (e *env) openDB() (*gorm.DB, error) {
	if e.db != nil {
		return e.db, nil
	}
	db, err := bootstrap.OpenDB(e.cfg.DB, e.log)
	if err != nil {
		return nil, err
	}
	e.db = db
	e.cleanup = append(e.cleanup, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db, nil
}

func (e *env) users() (*service.UserService, error) {
	db, err := e.openDB()
	if err != nil {
		return nil, err
	}
	return bootstrap.UserService(db, e.log), nil
}

func (e *env) close() {
	for i := len(e.cleanup) - 1; i >= 0; i-- {
		e.cleanup[i]()
	}
	e.cleanup = nil
	e.db = nil
}

func NewRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "usersctl",
		Short: "Operate the Users table directly (migrate, inspect, soft/hard delete, restore)",
		Example: `  # create / migrate the Users table
  $ usersctl migrate

  # issue an admin token for the admin api
  $ usersctl token --uid ops-1

  # list every user, soft-deleted included
  $ usersctl users list`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) { e.close() },
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVarP(&e.cfgPath, "config", "c", "", "config file (default $CONFIG_PATH or "+config.DefaultPath+")")

	root.AddCommand(newMigrateCmd(e), newTokenCmd(e), newUsersCmd(e))
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
