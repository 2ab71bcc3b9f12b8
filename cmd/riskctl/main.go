// Command riskctl генерирует происшествия, собирает геозоны и оценивает маршруты без HTTP-сервера.
package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shenikar/safe_route_system/internal/app"
	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/generator"
	"github.com/shenikar/safe_route_system/internal/repository"
	"github.com/shenikar/safe_route_system/internal/riskarea"
	"github.com/shenikar/safe_route_system/internal/service"
	"github.com/shenikar/safe_route_system/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli хранит состояние, общее для всех подкоманд
type cli struct {
	v   *viper.Viper
	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "riskctl",
		Short: "Offline tooling for the safe route risk engine",
		Long:  "Generates or imports incidents, builds high-risk areas into a local store and evaluates routes against them.",
		// Ошибки команд не сопровождаются справкой
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.String("store", config.StoreSQLite, "risk area store driver: memory, sqlite, redis or postgres")
	flags.String("sqlite-path", "risk_areas.db", "SQLite database file")
	flags.String("key", repository.DefaultKey, "key the risk area set is stored under")
	flags.String("log-level", "warn", "log level")
	_ = c.v.BindPFlag("store.driver", flags.Lookup("store"))
	_ = c.v.BindPFlag("store.sqlite_path", flags.Lookup("sqlite-path"))
	_ = c.v.BindPFlag("store.key", flags.Lookup("key"))
	_ = c.v.BindPFlag("log.level", flags.Lookup("log-level"))

	c.v.SetEnvPrefix("RISKCTL")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	c.v.SetDefault("store.timeout", "3s")
	c.v.SetDefault("store.database_url", "")
	c.v.SetDefault("redis.addr", "")
	c.v.SetDefault("redis.password", "")
	c.v.SetDefault("redis.db", 0)
	c.v.SetDefault("risk.radius_degrees", riskarea.DefaultRadiusDegrees)
	c.v.SetDefault("risk.vertex_count", riskarea.DefaultVertexCount)
	c.v.SetDefault("generator.radius_km", generator.DefaultRadiusKm)
	c.v.SetDefault("generator.sampling", string(generator.AngleRadius))
	c.v.SetDefault("batch.concurrency", service.DefaultBatchConcurrency)

	root.AddCommand(
		c.generateCmd(),
		c.buildCmd(),
		c.evaluateCmd(),
		c.resetCmd(),
	)
	return root
}

// load собирает конфигурацию из флагов и переменных RISKCTL_*
func (c *cli) load(stderr io.Writer) error {
	c.cfg = &config.Config{
		StoreDriver:       strings.ToLower(c.v.GetString("store.driver")),
		StoreKey:          c.v.GetString("store.key"),
		StoreTimeout:      c.v.GetDuration("store.timeout"),
		DatabaseURL:       c.v.GetString("store.database_url"),
		SQLitePath:        c.v.GetString("store.sqlite_path"),
		RedisAddr:         c.v.GetString("redis.addr"),
		RedisPass:         c.v.GetString("redis.password"),
		RedisDB:           c.v.GetInt("redis.db"),
		RiskRadiusDegrees: c.v.GetFloat64("risk.radius_degrees"),
		RiskVertexCount:   c.v.GetInt("risk.vertex_count"),
		GeneratorRadiusKm: c.v.GetFloat64("generator.radius_km"),
		GeneratorSampling: c.v.GetString("generator.sampling"),
		BatchConcurrency:  c.v.GetInt("batch.concurrency"),
	}
	if !(c.cfg.RiskRadiusDegrees > 0) {
		return eris.New("risk.radius_degrees must be positive")
	}
	if c.cfg.RiskVertexCount < 3 {
		return eris.New("risk.vertex_count must be at least 3")
	}
	c.log = logger.NewWithOutput(c.v.GetString("log.level"), "text", stderr)
	return nil
}

// withService открывает хранилище, восстанавливает набор геозон и вызывает fn
func (c *cli) withService(ctx context.Context, fn func(svc service.SafetyService, catalog *generator.Catalog) error) error {
	res, err := app.Open(ctx, c.cfg, c.log)
	if err != nil {
		return eris.Wrap(err, "open store")
	}
	defer res.Close()

	catalog, err := generator.DefaultCatalog()
	if err != nil {
		return eris.Wrap(err, "load catalog")
	}
	svc, err := app.NewSafetyService(c.cfg, res, catalog, c.log)
	if err != nil {
		return err
	}
	svc.RestoreRiskAreas(ctx)
	return fn(svc, catalog)
}

// printJSON печатает значение с отступами
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
