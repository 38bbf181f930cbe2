package service

import (
	"github.com/blackvant/backend/internal/audit"
	depositshandlers "github.com/blackvant/backend/internal/handlers/deposits"
	profithandlers "github.com/blackvant/backend/internal/handlers/profit"
	statshandlers "github.com/blackvant/backend/internal/handlers/stats"
	withdrawalshandlers "github.com/blackvant/backend/internal/handlers/withdrawals"
	"github.com/blackvant/backend/internal/pg"
	"github.com/blackvant/backend/internal/repo"
	"github.com/blackvant/backend/internal/service/authservice"
	"github.com/blackvant/backend/internal/service/depositservice"
	"github.com/blackvant/backend/internal/service/profitservice"
	"github.com/blackvant/backend/internal/service/statsservice"
	"github.com/blackvant/backend/internal/service/withdrawalservice"
	pkgauth "github.com/blackvant/backend/pkg/auth"
)

type Services struct {
	AuthService       pkgauth.IdentitySource
	DepositService    depositshandlers.Service
	WithdrawalService withdrawalshandlers.Service
	ProfitService     profithandlers.Service
	StatsService      statshandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, recorder *audit.Recorder) *Services {
	return &Services{
		AuthService:       authservice.New(repo.UserRepo),
		DepositService:    depositservice.New(repo.DepositRepo, repo.UserRepo, txManager, recorder),
		WithdrawalService: withdrawalservice.New(repo.WithdrawalRepo, repo.UserRepo, txManager, recorder),
		ProfitService:     profitservice.New(repo.UserRepo, repo.DistributionRepo, repo.AuditRepo, txManager),
		StatsService:      statsservice.New(repo.UserRepo, repo.DepositRepo, repo.WithdrawalRepo, repo.DistributionRepo),
	}
}
