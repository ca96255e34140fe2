package testutils

import (
	"time"

	"github.com/itbasis/go-clock"
)

// TestController bundles the fakes the controller and web tests need: a mock
// clock pinned inside the fixture season and a fake FPL server.
type TestController struct {
	Clock   *clock.Mock
	fakeFPL *FakeFPLServer
}

func NewTestController() *TestController {
	return newTestController(NewFakeFPLServer())
}

func NewTestControllerPreseason() *TestController {
	return newTestController(NewFakeFPLServerPreseason())
}

func newTestController(fake *FakeFPLServer) *TestController {
	c := clock.NewMock()
	// A Saturday afternoon during fixture gameweek 2.
	c.Set(time.Date(2024, 8, 24, 15, 0, 0, 0, time.UTC))

	return &TestController{
		Clock:   c,
		fakeFPL: fake,
	}
}

func (c *TestController) Close() {
	c.fakeFPL.Close()
}

func (c *TestController) FPLURL() string {
	return c.fakeFPL.URL()
}
