package groups

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	rngMocks "github.com/hueylin/groupballot/internal/rng/mocks"
)

type NamePickerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRand *rngMocks.MockRand
	svc      *service
}

func (s *NamePickerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRand = rngMocks.NewMockRand(s.mockCtrl)
	s.svc = &service{rand: s.mockRand}
}

func (s *NamePickerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNamePickerTestSuite(t *testing.T) {
	suite.Run(t, new(NamePickerTestSuite))
}

func (s *NamePickerTestSuite) TestPicksFromUnusedNames() {
	used := map[string]bool{
		strings.ToLower(namePool[0] + nameSuffix): true,
	}

	// 15 of 16 names remain; index 0 is the second pool entry
	s.mockRand.EXPECT().Intn(len(namePool) - 1).Return(0)

	name := s.svc.pickName(used)
	s.Equal(namePool[1]+nameSuffix, name)
}

func (s *NamePickerTestSuite) TestExhaustedPoolAppendsNumericSuffix() {
	used := make(map[string]bool, len(namePool))
	for _, base := range namePool {
		used[strings.ToLower(base+nameSuffix)] = true
	}

	s.mockRand.EXPECT().Intn(len(namePool)).Return(3)

	name := s.svc.pickName(used)
	s.Equal(namePool[3]+"2"+nameSuffix, name)
	s.False(used[strings.ToLower(name)])
}

func (s *NamePickerTestSuite) TestNumericSuffixSkipsUsedNames() {
	used := make(map[string]bool, len(namePool)+1)
	for _, base := range namePool {
		used[strings.ToLower(base+nameSuffix)] = true
	}
	used[strings.ToLower(namePool[3]+"2"+nameSuffix)] = true

	s.mockRand.EXPECT().Intn(len(namePool)).Return(3)

	name := s.svc.pickName(used)
	s.Equal(namePool[3]+"3"+nameSuffix, name)
}
