package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dicepass/dicepass/internal/models"
	"github.com/dicepass/dicepass/internal/services/passphrase"
	passphraseMocks "github.com/dicepass/dicepass/internal/services/passphrase/mocks"
)

type CLIHandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *passphraseMocks.MockService
	handler     *Handler
	out         *bytes.Buffer
	ctx         context.Context

	noColorBefore bool

	testTime time.Time
}

func (s *CLIHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = passphraseMocks.NewMockService(s.mockCtrl)
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()

	// Escape codes would make the output assertions unreadable
	s.noColorBefore = color.NoColor
	color.NoColor = true

	s.testTime = time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler, err := New(&Config{
		PassphraseService: s.mockService,
		Logger:            logger,
		Out:               s.out,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *CLIHandlerTestSuite) TearDownTest() {
	color.NoColor = s.noColorBefore
	s.mockCtrl.Finish()
}

func TestCLIHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CLIHandlerTestSuite))
}

func (s *CLIHandlerTestSuite) expectGenerate(phrase *models.Passphrase) {
	s.mockService.EXPECT().
		Generate(gomock.Any(), nil).
		Return(&passphrase.GenerateOutput{Passphrase: phrase}, nil)
}

func (s *CLIHandlerTestSuite) newPhrase(words []string, preset models.Preset) *models.Passphrase {
	return &models.Passphrase{
		ID:          "test-passphrase-id",
		Words:       words,
		Preset:      preset,
		Entropy:     models.NewEntropy(7776, len(words)),
		GeneratedAt: s.testTime,
	}
}

func (s *CLIHandlerTestSuite) TestNew_Validation() {
	handler, err := New(nil)
	s.Error(err)
	s.Nil(handler)

	handler, err = New(&Config{})
	s.Error(err)
	s.Nil(handler)
}

func (s *CLIHandlerTestSuite) TestRun() {
	s.expectGenerate(s.newPhrase([]string{"abacus", "abdomen"}, models.DefaultPreset()))

	err := s.handler.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)

	s.Equal("abacus abdomen\n", s.out.String())
}

func (s *CLIHandlerTestSuite) TestRun_AppliesPhrasePreset() {
	s.expectGenerate(s.newPhrase([]string{"abacus", "abdomen"}, models.Preset{Style: models.PresetStylePascal}))

	err := s.handler.Run(s.ctx, &RunInput{})
	s.Require().NoError(err)

	s.Equal("AbacusAbdomen\n", s.out.String())
}

func (s *CLIHandlerTestSuite) TestRun_ShowEntropy() {
	s.expectGenerate(s.newPhrase([]string{"abacus", "abdomen"}, models.DefaultPreset()))

	err := s.handler.Run(s.ctx, &RunInput{ShowEntropy: true})
	s.Require().NoError(err)

	expected := "abacus abdomen\n" +
		"\nPossibilities: 7776\n" +
		"Entropy: 25.85 bits\n" +
		"\nMore about entropy at https://theworld.com/~reinhold/dicewarefaq.html#entropy\n"
	s.Equal(expected, s.out.String())
}

func (s *CLIHandlerTestSuite) TestRun_ShowEntropy_SixWords() {
	s.expectGenerate(s.newPhrase(
		[]string{"abacus", "abdomen", "abide", "ability", "able", "ablaze"},
		models.DefaultPreset(),
	))

	err := s.handler.Run(s.ctx, &RunInput{ShowEntropy: true})
	s.Require().NoError(err)

	s.Contains(s.out.String(), "Entropy: 77.55 bits\n")
}

func (s *CLIHandlerTestSuite) TestRun_EmptyPassphrase() {
	s.expectGenerate(s.newPhrase(nil, models.DefaultPreset()))

	err := s.handler.Run(s.ctx, &RunInput{})

	s.ErrorIs(err, ErrEmptyPassphrase)
	s.Empty(s.out.String())
}

func (s *CLIHandlerTestSuite) TestRun_ServiceErrorPropagates() {
	s.mockService.EXPECT().
		Generate(gomock.Any(), nil).
		Return(nil, errors.New("roller exploded"))

	err := s.handler.Run(s.ctx, &RunInput{})

	s.ErrorContains(err, "roller exploded")
	s.Empty(s.out.String())
}

func (s *CLIHandlerTestSuite) TestRun_NilInput() {
	err := s.handler.Run(s.ctx, nil)

	s.Error(err)
}
