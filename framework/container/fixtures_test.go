package container_test

import (
	"errors"

	"github.com/km-arc/go-beans/framework/container"
)

// ── stub components ───────────────────────────────────────────────────────────

type RepositoryB struct {
	container.Repository
	Name string
}

type ServiceA struct {
	container.Service
	Repo *RepositoryB `inject:""`
}

type InterfaceX interface {
	X() string
}

type Consumer struct {
	container.Component
	Dep InterfaceX `inject:""`
}

type implX1 struct{ container.Component }

func (*implX1) X() string { return "x1" }

type implX2 struct{ container.Component }

func (*implX2) X() string { return "x2" }

// implicitTarget exercises wiring without tags.
type implicitTarget struct {
	repo    *RepositoryB
	Label   string
	Skipped *RepositoryB `inject:"-"`
}

type unmarked struct {
	Repo *RepositoryB `inject:""`
}

type cycleA struct {
	B *cycleB `inject:""`
}

type cycleB struct {
	A *cycleA `inject:""`
}

type initProbe struct {
	Repo    *RepositoryB `inject:""`
	sawRepo bool
}

func (p *initProbe) Initialize() error {
	p.sawRepo = p.Repo != nil
	return nil
}

var errInit = errors.New("init failed")

type failingInit struct{}

func (*failingInit) Initialize() error { return errInit }

var errBoom = errors.New("boom")

func newFailingRepo() (*RepositoryB, error) { return nil, errBoom }

func newNilRepo() *RepositoryB { return nil }

func newPanickingRepo() *RepositoryB { panic("kaboom") }

func newRepoWithArg(name string) *RepositoryB { return &RepositoryB{Name: name} }

func newNamedRepo() *RepositoryB { return &RepositoryB{Name: "named"} }
