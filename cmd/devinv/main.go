package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deviceInventoryManagement/internal/auth"
	"deviceInventoryManagement/internal/config"
	"deviceInventoryManagement/internal/db"
	"deviceInventoryManagement/models"
	"deviceInventoryManagement/repository"
)

var (
	version    = "dev"
	commitHash = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "devinv",
	Short: "devinv - device inventory tracker",
	Long: `devinv tracks inventory devices (computers, peripherals) for a small
organization: device records, authentication, and an append-only audit
trail of logins and user actions, stored in a local SQLite database.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("devinv %s (commit: %s)\n", version, commitHash)
	},
}

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and start a session",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE:  runLogout,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./devinv.yaml)")
	rootCmd.PersistentFlags().String("database", "", "SQLite database path (default "+db.DefaultPath+")")

	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(versionCmd, loginCmd, logoutCmd, deviceCmd, dashboardCmd, logsCmd)
}

// app wires the configuration, database and repositories for one
// command invocation.
type app struct {
	cfg     *config.Config
	db      *sql.DB
	logger  *zap.Logger
	devices repository.DeviceRepositoryI
	logs    repository.LogRepositoryI
	users   repository.UserRepositoryI
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if flag, _ := cmd.Flags().GetString("database"); flag != "" {
		cfg.DatabasePath = flag
	}

	var logger *zap.Logger
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logCfg := zap.NewProductionConfig()
		logCfg.DisableStacktrace = true
		logger, err = logCfg.Build()
	}
	if err != nil {
		return nil, err
	}

	d, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Warn("database open failed", zap.String("path", cfg.DatabasePath), zap.Error(err))
		return nil, fmt.Errorf("open database %s: %w", cfg.DatabasePath, err)
	}
	// Schema bootstrap is fail-soft: a DDL error is logged and the
	// command proceeds; the affected operation degrades on its own.
	if err := db.Init(d); err != nil {
		logger.Warn("database initialization failed", zap.Error(err))
	}

	return &app{
		cfg:     cfg,
		db:      d,
		logger:  logger,
		devices: repository.NewDeviceRepository(d, logger),
		logs:    repository.NewLogRepository(d, logger),
		users:   repository.NewUserRepository(d, logger),
	}, nil
}

func (a *app) close() {
	_ = a.db.Close()
	_ = a.logger.Sync()
}

// currentSession loads and validates the persisted session token.
func (a *app) currentSession() (*auth.Session, error) {
	tok, err := auth.ReadSessionFile(a.cfg.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("not logged in (run 'devinv login')")
	}
	s, err := auth.ParseToken(tok, a.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("session invalid or expired (run 'devinv login')")
	}
	return s, nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := context.Background()

	u := a.users.Authenticate(ctx, loginUsername, loginPassword)
	if u == nil {
		// Unknown user and wrong password are deliberately the same answer.
		return fmt.Errorf("invalid username or password")
	}

	tok, err := auth.IssueToken(a.cfg.JWTSecret, u, a.cfg.SessionTTL)
	if err != nil {
		return err
	}
	if err := auth.WriteSessionFile(a.cfg.SessionFile, tok); err != nil {
		return err
	}

	a.logs.InsertLoginLog(ctx, u.ID, "<User> login", nowTimestamp())
	fmt.Printf("Logged in as %s (%s)\n", u.Username, u.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	s, err := a.currentSession()
	if err != nil {
		return err
	}

	a.logs.InsertLoginLog(context.Background(), s.UserID, "<User> logout", nowTimestamp())
	if err := auth.RemoveSessionFile(a.cfg.SessionFile); err != nil {
		return err
	}
	fmt.Printf("Logged out %s\n", s.Username)
	return nil
}

func nowTimestamp() string {
	return models.FormatTimestamp(time.Now())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
