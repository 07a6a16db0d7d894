package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainLocation "facility-hub/internal/domain/location"
	domainUser "facility-hub/internal/domain/user"
	"facility-hub/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	m.Run()
}

type stubRepo struct {
	locations []*domainLocation.Location
	lastOnly  *int64
}

func (s *stubRepo) Create(ctx context.Context, loc *domainLocation.Location) error {
	loc.ID = 10
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*domainLocation.Location, error) {
	for _, loc := range s.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return nil, domainLocation.ErrLocationNotFound
}

func (s *stubRepo) GetAll(ctx context.Context, onlyID *int64) ([]*domainLocation.Location, error) {
	s.lastOnly = onlyID
	if onlyID == nil {
		return s.locations, nil
	}
	var out []*domainLocation.Location
	for _, loc := range s.locations {
		if loc.ID == *onlyID {
			out = append(out, loc)
		}
	}
	return out, nil
}

func (s *stubRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.locations)), nil
}

func intPtr(v int64) *int64 { return &v }

func newStubService() (*Service, *stubRepo) {
	repo := &stubRepo{locations: []*domainLocation.Location{
		{ID: 1, Name: "Dubai HQ", Country: "UAE", DeviceCount: 5},
		{ID: 2, Name: "Kollam Plant", Country: "India", DeviceCount: 5},
	}}
	return NewService(repo), repo
}

func TestListForSuperuserSeesAll(t *testing.T) {
	svc, repo := newStubService()

	out, err := svc.ListFor(context.Background(), &domainUser.User{ID: 1, IsSuperuser: true})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Nil(t, repo.lastOnly)
}

func TestListForLocalUserSeesOwnLocation(t *testing.T) {
	svc, repo := newStubService()

	out, err := svc.ListFor(context.Background(), &domainUser.User{ID: 2, LocationID: intPtr(2)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Kollam Plant", out[0].Name)
	require.NotNil(t, repo.lastOnly)
	assert.Equal(t, int64(2), *repo.lastOnly)
}

func TestListForUnanchoredUserSeesNothing(t *testing.T) {
	svc, _ := newStubService()

	out, err := svc.ListFor(context.Background(), &domainUser.User{ID: 3})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCreateValidatesInput(t *testing.T) {
	svc, _ := newStubService()

	_, err := svc.Create(context.Background(), &CreateLocationRequest{Name: "X"})
	require.Error(t, err)

	resp, err := svc.Create(context.Background(), &CreateLocationRequest{
		Name: "  New Site  ", Country: "UAE", Lat: 25.2, Lon: 55.3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "New Site", resp.Name)
}
