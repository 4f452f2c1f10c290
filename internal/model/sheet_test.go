package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SheetSuite struct {
	suite.Suite
	sheet *Sheet
}

func TestSheetSuite(t *testing.T) {
	suite.Run(t, new(SheetSuite))
}

func (s *SheetSuite) SetupTest() {
	s.sheet = NewSheet("ABC123", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

func (s *SheetSuite) addPlayers(names ...string) {
	for _, name := range names {
		s.Require().True(s.sheet.AddPlayer(PlayerID("id-"+name), name))
	}
}

func (s *SheetSuite) startedWith(names ...string) {
	s.addPlayers(names...)
	s.Require().True(s.sheet.StartGame())
}

func (s *SheetSuite) assertTotalsConsistent() {
	for _, p := range s.sheet.Players {
		sum := 0
		for _, v := range p.Scores {
			sum += v
		}
		s.Equal(sum, p.Total, "total for %s", p.Name)
	}
}

func (s *SheetSuite) assertRoundsSynchronised() {
	rounds := s.sheet.RoundCount()
	for _, p := range s.sheet.Players {
		s.Len(p.Scores, rounds, "scores for %s", p.Name)
	}
}

// AddPlayer tests

func (s *SheetSuite) TestAddPlayerAppendsInOrder() {
	s.addPlayers("Ann", "Bo", "Cy")

	s.Require().Len(s.sheet.Players, 3)
	s.Equal("Ann", s.sheet.Players[0].Name)
	s.Equal("Bo", s.sheet.Players[1].Name)
	s.Equal("Cy", s.sheet.Players[2].Name)
	for _, p := range s.sheet.Players {
		s.Empty(p.Scores)
		s.Equal(0, p.Total)
	}
}

func (s *SheetSuite) TestAddPlayerTrimsName() {
	s.True(s.sheet.AddPlayer("p1", "  Ann  "))
	s.Equal("Ann", s.sheet.Players[0].Name)
}

func (s *SheetSuite) TestAddPlayerIgnoresBlankName() {
	s.False(s.sheet.AddPlayer("p1", ""))
	s.False(s.sheet.AddPlayer("p2", "   \t"))
	s.Empty(s.sheet.Players)
}

func (s *SheetSuite) TestAddPlayerIgnoresDuplicateID() {
	s.True(s.sheet.AddPlayer("p1", "Ann"))
	s.False(s.sheet.AddPlayer("p1", "Bo"))
	s.Len(s.sheet.Players, 1)
}

func (s *SheetSuite) TestAddPlayerIgnoredWhileInProgress() {
	s.startedWith("Ann", "Bo")

	s.False(s.sheet.AddPlayer("p3", "Cy"))
	s.Len(s.sheet.Players, 2)
}

// RemovePlayer tests

func (s *SheetSuite) TestRemovePlayer() {
	s.addPlayers("Ann", "Bo", "Cy")

	s.True(s.sheet.RemovePlayer("id-Bo"))
	s.Require().Len(s.sheet.Players, 2)
	s.Equal("Ann", s.sheet.Players[0].Name)
	s.Equal("Cy", s.sheet.Players[1].Name)
}

func (s *SheetSuite) TestRemoveUnknownPlayerIsNoOp() {
	s.addPlayers("Ann")

	s.False(s.sheet.RemovePlayer("nobody"))
	s.Len(s.sheet.Players, 1)
}

func (s *SheetSuite) TestRemovePlayerIgnoredWhileInProgress() {
	s.startedWith("Ann", "Bo")

	s.False(s.sheet.RemovePlayer("id-Ann"))
	s.Len(s.sheet.Players, 2)
}

// StartGame tests

func (s *SheetSuite) TestStartGameNeedsTwoPlayers() {
	s.False(s.sheet.StartGame())
	s.Equal(SheetStateSetup, s.sheet.State)

	s.addPlayers("Ann")
	s.False(s.sheet.CanStart())
	s.False(s.sheet.StartGame())
	s.Equal(SheetStateSetup, s.sheet.State)
	s.Empty(s.sheet.Players[0].Scores)
}

func (s *SheetSuite) TestStartGameCreatesFirstRound() {
	s.addPlayers("Ann", "Bo")
	s.True(s.sheet.CanStart())

	s.True(s.sheet.StartGame())
	s.True(s.sheet.GameStarted())
	s.Equal(1, s.sheet.RoundCount())
	for _, p := range s.sheet.Players {
		s.Equal([]int{0}, p.Scores)
		s.Equal(0, p.Total)
	}
}

func (s *SheetSuite) TestStartGameTwiceIsNoOp() {
	s.startedWith("Ann", "Bo")
	s.sheet.AddRound()

	s.False(s.sheet.StartGame())
	s.Equal(2, s.sheet.RoundCount())
}

// AddRound tests

func (s *SheetSuite) TestAddRoundExtendsEveryPlayer() {
	s.startedWith("Ann", "Bo", "Cy")

	for i := 0; i < 4; i++ {
		before := s.sheet.RoundCount()
		s.True(s.sheet.AddRound())
		s.Equal(before+1, s.sheet.RoundCount())
		s.assertRoundsSynchronised()
	}
	for _, p := range s.sheet.Players {
		s.Equal(0, p.Scores[len(p.Scores)-1])
	}
}

func (s *SheetSuite) TestAddRoundInSetupIsNoOp() {
	s.addPlayers("Ann", "Bo")

	s.False(s.sheet.AddRound())
	s.Equal(0, s.sheet.RoundCount())
}

// UpdateScore tests

func (s *SheetSuite) TestUpdateScoreRecomputesTotal() {
	s.startedWith("Ann", "Bo")
	s.sheet.AddRound()
	s.sheet.AddRound()

	s.True(s.sheet.UpdateScore("id-Ann", 0, "15"))
	s.True(s.sheet.UpdateScore("id-Ann", 2, "7"))
	s.True(s.sheet.UpdateScore("id-Ann", 0, "20"))

	ann := s.sheet.Player("id-Ann")
	s.Equal([]int{20, 0, 7}, ann.Scores)
	s.Equal(27, ann.Total)
	s.Equal(0, s.sheet.Player("id-Bo").Total)
	s.assertTotalsConsistent()
}

func (s *SheetSuite) TestUpdateScoreTreatsGarbageAsZero() {
	s.startedWith("Ann", "Bo")
	s.sheet.UpdateScore("id-Ann", 0, "12")

	s.True(s.sheet.UpdateScore("id-Ann", 0, "abc"))
	s.Equal(0, s.sheet.Player("id-Ann").Total)

	s.sheet.UpdateScore("id-Ann", 0, "12")
	s.True(s.sheet.UpdateScore("id-Ann", 0, ""))
	s.Equal(0, s.sheet.Player("id-Ann").Total)
}

func (s *SheetSuite) TestUpdateScoreOutOfRangeIsNoOp() {
	s.startedWith("Ann", "Bo")

	s.False(s.sheet.UpdateScore("id-Ann", 1, "10"))
	s.False(s.sheet.UpdateScore("id-Ann", -1, "10"))
	s.False(s.sheet.UpdateScore("nobody", 0, "10"))
	s.Equal([]int{0}, s.sheet.Player("id-Ann").Scores)
}

func (s *SheetSuite) TestUpdateScoreInSetupIsNoOp() {
	s.addPlayers("Ann", "Bo")

	s.False(s.sheet.UpdateScore("id-Ann", 0, "10"))
	s.Empty(s.sheet.Player("id-Ann").Scores)
}

func (s *SheetSuite) TestTotalsStayConsistentOverManyUpdates() {
	s.startedWith("Ann", "Bo", "Cy")
	for i := 0; i < 5; i++ {
		s.sheet.AddRound()
	}

	inputs := []string{"3", "-4", "x", "", "99", "12abc", "7.5", "+8"}
	for i, in := range inputs {
		player := s.sheet.Players[i%3].ID
		s.sheet.UpdateScore(player, i%s.sheet.RoundCount(), in)
		s.assertTotalsConsistent()
	}
}

// ResetGame tests

func (s *SheetSuite) TestResetGameKeepsPlayers() {
	s.startedWith("Ann", "Bo")
	s.sheet.AddRound()
	s.sheet.UpdateScore("id-Ann", 1, "40")

	s.True(s.sheet.ResetGame())
	s.Equal(SheetStateSetup, s.sheet.State)
	s.Equal(0, s.sheet.RoundCount())
	s.Require().Len(s.sheet.Players, 2)
	s.Equal("Ann", s.sheet.Players[0].Name)
	s.Equal(PlayerID("id-Ann"), s.sheet.Players[0].ID)
	for _, p := range s.sheet.Players {
		s.Empty(p.Scores)
		s.Equal(0, p.Total)
	}
}

func (s *SheetSuite) TestResetGameInSetup() {
	s.addPlayers("Ann")

	s.True(s.sheet.ResetGame())
	s.Equal(SheetStateSetup, s.sheet.State)
	s.Equal(0, s.sheet.RoundCount())
}

func (s *SheetSuite) TestPlayersCanChangeAfterReset() {
	s.startedWith("Ann", "Bo")
	s.sheet.ResetGame()

	s.True(s.sheet.AddPlayer("p3", "Cy"))
	s.True(s.sheet.RemovePlayer("id-Ann"))
	s.Len(s.sheet.Players, 2)
}

// Query tests

func (s *SheetSuite) TestRoundCountEmptySheet() {
	s.Equal(0, s.sheet.RoundCount())
}

func (s *SheetSuite) TestRankedTopOrdersByTotal() {
	s.startedWith("Ann", "Bo", "Cy", "Di")
	s.sheet.UpdateScore("id-Bo", 0, "30")
	s.sheet.UpdateScore("id-Cy", 0, "10")
	s.sheet.UpdateScore("id-Di", 0, "20")

	top := s.sheet.RankedTop(3)
	s.Require().Len(top, 3)
	s.Equal("Bo", top[0].Name)
	s.Equal("Di", top[1].Name)
	s.Equal("Cy", top[2].Name)
}

func (s *SheetSuite) TestRankedTopIsStableOnTies() {
	s.startedWith("Ann", "Bo", "Cy", "Di")
	s.sheet.UpdateScore("id-Cy", 0, "5")

	top := s.sheet.RankedTop(3)
	s.Require().Len(top, 3)
	s.Equal("Cy", top[0].Name)
	s.Equal("Ann", top[1].Name)
	s.Equal("Bo", top[2].Name)
}

func (s *SheetSuite) TestRankedTopDoesNotReorderPlayers() {
	s.startedWith("Ann", "Bo")
	s.sheet.UpdateScore("id-Bo", 0, "30")

	_ = s.sheet.RankedTop(3)
	s.Equal("Ann", s.sheet.Players[0].Name)
	s.Equal("Bo", s.sheet.Players[1].Name)
}

func (s *SheetSuite) TestRankedTopBounds() {
	s.addPlayers("Ann", "Bo")

	s.Len(s.sheet.RankedTop(3), 2)
	s.Empty(s.sheet.RankedTop(0))
	s.Empty(s.sheet.RankedTop(-1))
}

func (s *SheetSuite) TestCloneIsIndependent() {
	s.startedWith("Ann", "Bo")

	c := s.sheet.Clone()
	c.UpdateScore("id-Ann", 0, "50")
	c.AddRound()

	s.Equal(0, s.sheet.Player("id-Ann").Total)
	s.Equal(1, s.sheet.RoundCount())
}

// Walkthrough of a whole game

func (s *SheetSuite) TestScenario() {
	s.True(s.sheet.AddPlayer("ann", "Ann"))
	s.True(s.sheet.AddPlayer("bo", "Bo"))

	s.True(s.sheet.StartGame())
	s.Equal(1, s.sheet.RoundCount())
	s.Equal(0, s.sheet.Player("ann").Total)
	s.Equal(0, s.sheet.Player("bo").Total)

	s.True(s.sheet.AddRound())
	s.Equal(2, s.sheet.RoundCount())

	s.True(s.sheet.UpdateScore("ann", 0, "15"))
	s.Equal(15, s.sheet.Player("ann").Total)
	s.Equal(0, s.sheet.Player("bo").Total)

	s.True(s.sheet.UpdateScore("bo", 1, "abc"))
	s.Equal(0, s.sheet.Player("bo").Total)

	top := s.sheet.RankedTop(3)
	s.Require().Len(top, 2)
	s.Equal(PlayerID("ann"), top[0].ID)
	s.Equal(PlayerID("bo"), top[1].ID)

	s.True(s.sheet.ResetGame())
	s.False(s.sheet.GameStarted())
	s.Equal(0, s.sheet.Player("ann").Total)
	s.Equal(0, s.sheet.Player("bo").Total)
	s.Equal("Ann", s.sheet.Player("ann").Name)
	s.Equal("Bo", s.sheet.Player("bo").Name)
}
