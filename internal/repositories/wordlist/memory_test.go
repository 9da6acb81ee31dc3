package wordlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	lines []string
	repo  Repository
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	s.lines = []string{
		"11111 abacus",
		"11112 abdomen",
		"52316 regalia",
		"66666 zoology",
	}

	repo, err := NewMemory(&Config{
		Lines: s.lines,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) TestNewMemory_NilConfig() {
	repo, err := NewMemory(nil)

	s.Error(err)
	s.Nil(repo)
}

func (s *MemoryRepositoryTestSuite) TestGetWord() {
	output, err := s.repo.GetWord(s.ctx, &GetWordInput{
		Index: 52316,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.Require().NotNil(output.Entry)

	s.Equal(52316, output.Entry.Index)
	s.Equal("regalia", output.Entry.Word)
}

func (s *MemoryRepositoryTestSuite) TestGetWord_NotFound() {
	output, err := s.repo.GetWord(s.ctx, &GetWordInput{
		Index: 11110,
	})

	s.ErrorIs(err, ErrWordNotFound)
	s.Nil(output)
}

func (s *MemoryRepositoryTestSuite) TestGetWord_NilInput() {
	output, err := s.repo.GetWord(s.ctx, nil)

	s.Error(err)
	s.Nil(output)
}

func (s *MemoryRepositoryTestSuite) TestCountEntries() {
	output, err := s.repo.CountEntries(s.ctx, &CountEntriesInput{})
	s.Require().NoError(err)

	s.Equal(4, output.Count)
}

func (s *MemoryRepositoryTestSuite) TestNewMemory_DropsMalformedLines() {
	repo, err := NewMemory(&Config{
		Lines: []string{
			"12345 apple",
			"abc apple",
			"12345",
			"",
			"   ",
			"-11111 negative",
		},
	})
	s.Require().NoError(err)

	count, err := repo.CountEntries(s.ctx, &CountEntriesInput{})
	s.Require().NoError(err)
	s.Equal(1, count.Count)

	output, err := repo.GetWord(s.ctx, &GetWordInput{Index: 12345})
	s.Require().NoError(err)
	s.Equal("apple", output.Entry.Word)
}

func (s *MemoryRepositoryTestSuite) TestNewMemory_IgnoresExtraComponents() {
	repo, err := NewMemory(&Config{
		Lines: []string{"12345 apple pie"},
	})
	s.Require().NoError(err)

	output, err := repo.GetWord(s.ctx, &GetWordInput{Index: 12345})
	s.Require().NoError(err)

	s.Equal("apple", output.Entry.Word)
}

func (s *MemoryRepositoryTestSuite) TestNewMemory_FirstDuplicateWins() {
	repo, err := NewMemory(&Config{
		Lines: []string{
			"12345 apple",
			"12345 banana",
		},
	})
	s.Require().NoError(err)

	output, err := repo.GetWord(s.ctx, &GetWordInput{Index: 12345})
	s.Require().NoError(err)
	s.Equal("apple", output.Entry.Word)

	// Both lines are real entries even though only one wins lookups
	count, err := repo.CountEntries(s.ctx, &CountEntriesInput{})
	s.Require().NoError(err)
	s.Equal(2, count.Count)
}

func (s *MemoryRepositoryTestSuite) TestNewMemory_SnapshotsLines() {
	s.lines[2] = "52316 overwritten"
	s.lines[3] = "garbage"

	output, err := s.repo.GetWord(s.ctx, &GetWordInput{Index: 52316})
	s.Require().NoError(err)
	s.Equal("regalia", output.Entry.Word)

	count, err := s.repo.CountEntries(s.ctx, &CountEntriesInput{})
	s.Require().NoError(err)
	s.Equal(4, count.Count)
}

func (s *MemoryRepositoryTestSuite) TestGetWord_CallerCannotMutateStore() {
	output, err := s.repo.GetWord(s.ctx, &GetWordInput{Index: 11111})
	s.Require().NoError(err)

	output.Entry.Word = "changed"

	again, err := s.repo.GetWord(s.ctx, &GetWordInput{Index: 11111})
	s.Require().NoError(err)
	s.Equal("abacus", again.Entry.Word)
}
