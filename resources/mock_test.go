package resources

import (
	"io"
	"net/url"

	"github.com/stretchr/testify/mock"
)

// mockLoader is a Loader whose answers are scripted per name.
type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Resource(name string) (*url.URL, error) {
	args := m.Called(name)
	u, _ := args.Get(0).(*url.URL)
	return u, args.Error(1)
}

func (m *mockLoader) Open(name string) (io.ReadCloser, error) {
	args := m.Called(name)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}
