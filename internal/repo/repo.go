package repo

import (
	"github.com/blackvant/backend/internal/pg"
	auditrepo "github.com/blackvant/backend/internal/repo/audit-repo"
	depositrepo "github.com/blackvant/backend/internal/repo/deposit-repo"
	distributionrepo "github.com/blackvant/backend/internal/repo/distribution-repo"
	userrepo "github.com/blackvant/backend/internal/repo/user-repo"
	withdrawalrepo "github.com/blackvant/backend/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	DepositRepo      *depositrepo.Repository
	WithdrawalRepo   *withdrawalrepo.Repository
	DistributionRepo *distributionrepo.Repository
	AuditRepo        *auditrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		DepositRepo:      depositrepo.New(conn),
		WithdrawalRepo:   withdrawalrepo.New(conn),
		DistributionRepo: distributionrepo.New(conn),
		AuditRepo:        auditrepo.New(conn),
	}
}
