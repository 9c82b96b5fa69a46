package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/scanner"
)

type orderRepository struct {
	container.Repository
}

type orderService struct {
	container.Service
	Repo *orderRepository `inject:""`
}

type plainHelper struct{}

func typeNames(cs []container.CandidateType) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func TestCatalog_ScanFiltersMarkers(t *testing.T) {
	t.Parallel()

	cat := scanner.NewCatalog()
	cat.Register(
		container.TypeOf[orderService](),
		container.TypeOf[plainHelper](),
		container.TypeOf[orderRepository](),
	)

	got := cat.Scan()
	assert.Equal(t, []string{"*scanner_test.orderService", "*scanner_test.orderRepository"}, typeNames(got))
	assert.Len(t, cat.All(), 3)
}

func TestCatalog_ScanByPackage(t *testing.T) {
	t.Parallel()

	cat := scanner.NewCatalog()
	cat.Register(container.TypeOf[orderService]())

	const pkg = "github.com/km-arc/go-beans/framework/scanner_test"

	assert.Len(t, cat.Scan(pkg), 1)
	assert.Len(t, cat.Scan("github.com/km-arc/go-beans/framework"), 1)
	assert.Len(t, cat.Scan("github.com/km-arc/go-beans/framework/"), 1)
	assert.Empty(t, cat.Scan("github.com/km-arc/go-beans/frame"))
	assert.Empty(t, cat.Scan("github.com/other"))
	assert.Len(t, cat.Scan("github.com/other", pkg), 1)
}

func TestCatalog_RegisterIgnoresRepeats(t *testing.T) {
	t.Parallel()

	cat := scanner.NewCatalog()
	cat.Register(container.TypeOf[orderRepository]())
	cat.Register(container.TypeOf[*orderRepository](), container.Candidate(nil))

	assert.Len(t, cat.All(), 1)
}

func TestCatalog_ScanFeedsContainer(t *testing.T) {
	t.Parallel()

	cat := scanner.NewCatalog()
	cat.Register(container.TypeOf[orderService](), container.TypeOf[orderRepository]())

	c, err := container.NewContainer(cat.Scan(), container.WithInjectableFilter(container.InjectTag))
	require.NoError(t, err)

	svc := container.MustResolve[*orderService](c)
	assert.Same(t, container.MustResolve[*orderRepository](c), svc.Repo)
}

func TestDefaultCatalog(t *testing.T) {
	scanner.Register(container.TypeOf[orderRepository]())
	assert.Len(t, scanner.Scan("github.com/km-arc/go-beans/framework/scanner_test"), 1)
}
