package main

import (
	"net/http"

	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/clubeestetica/api-contratos/internal/config"
	"github.com/clubeestetica/api-contratos/internal/contrato"
	"github.com/clubeestetica/api-contratos/internal/empresa"
	"github.com/clubeestetica/api-contratos/internal/metrics"
	"github.com/clubeestetica/api-contratos/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Erro ao carregar configuração: ", err)
	}

	nivel, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		nivel = log.InfoLevel
	}
	log.SetLevel(nivel)

	db, err := abrirBanco(cfg)
	if err != nil {
		log.Fatal("Erro ao conectar no banco: ", err)
	}

	if err := db.AutoMigrate(&contrato.Contrato{}, &empresa.Configuracao{}); err != nil {
		log.Fatal("Erro no AutoMigrate: ", err)
	}
	if err := empresa.NewRepository().SemearPadroes(db); err != nil {
		log.Fatal("Erro ao semear configurações: ", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	router := web.NewRouter(db, cfg, m)

	log.Info("Servidor rodando em ", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, router))
}

// abrirBanco seleciona o driver conforme a configuração: sqlite para o
// arquivo local (padrão) e postgres para a DSN completa.
func abrirBanco(cfg *config.Config) (*gorm.DB, error) {
	opts := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Error)}
	if cfg.DBDriver == "postgres" {
		return gorm.Open(postgres.Open(cfg.DBDSN), opts)
	}
	return gorm.Open(sqlite.Open(cfg.DBDSN), opts)
}
