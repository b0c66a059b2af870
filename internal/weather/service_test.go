package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	records []Record
	err     error
}

func (p *stubProvider) Fetch(ctx context.Context) ([]Record, error) {
	return p.records, p.err
}

type fakeStore struct {
	records  []Record
	replaces int
}

func (s *fakeStore) Replace(records []Record) {
	s.records = records
	s.replaces++
}

func (s *fakeStore) Snapshot() []Record {
	return s.records
}

func TestRefreshCommitsAndReturnsStoreContents(t *testing.T) {
	records := []Record{
		{ID: 1, Description: "Clear", Temperature: 295.2},
		{ID: 2, Description: "Clouds", Temperature: 291.7},
	}
	st := &fakeStore{}
	svc := NewService(st, &stubProvider{records: records})

	got, err := svc.Refresh(context.Background())

	require.NoError(t, err)
	require.Equal(t, records, got)
	require.Equal(t, 1, st.replaces)
	require.Equal(t, records, st.records)
}

func TestRefreshFailureLeavesStoreUntouched(t *testing.T) {
	previous := []Record{{ID: 9, Description: "Rain", Temperature: 280.0}}
	st := &fakeStore{records: previous}
	svc := NewService(st, &stubProvider{err: errors.New("upstream down")})

	got, err := svc.Refresh(context.Background())

	require.Error(t, err)
	require.Nil(t, got)
	require.Zero(t, st.replaces)
	require.Equal(t, previous, st.Snapshot())
}
