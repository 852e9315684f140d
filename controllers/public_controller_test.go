// File: controllers/public_controller_test.go
package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/models"
)

func publicRouter(env *testEnv) *gin.Engine {
	ctl := NewPublicController(env.teams, env.players, env.games, env.staff)
	router := gin.New()
	router.GET("/public/teams", ctl.GetTeams)
	router.GET("/public/teams/:teamId/players", ctl.GetPlayersByTeam)
	router.GET("/public/games", ctl.GetFullSchedule)
	router.GET("/public/games/upcoming", ctl.GetUpcomingGames)
	router.GET("/public/games/recent", ctl.GetRecentGames)
	router.GET("/public/staff", ctl.GetStaff)
	router.GET("/public/staff/:id", ctl.GetStaffMember)
	return router
}

func (env *testEnv) addGame(t *testing.T, teamID int64, at time.Time, us, them *int) {
	t.Helper()
	_, err := env.games.CreateGame(context.Background(), models.CreateOrUpdateGameRequest{
		TeamID:       teamID,
		Opponent:     "Rivals",
		GameDateTime: at,
		HomeAway:     models.HomeGame,
		Location:     "Main Gym",
		ScoreUs:      us,
		ScoreThem:    them,
	})
	require.NoError(t, err)
}

func TestPublicTeams_Empty(t *testing.T) {
	router := publicRouter(newTestEnv())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/teams", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicPlayers_ByTeam(t *testing.T) {
	env := newTestEnv()
	team := env.addTeam(t, "U16 National", models.TeamLevelNational)
	other := env.addTeam(t, "U14 Regional", models.TeamLevelRegional)
	_, err := env.players.CreatePlayer(context.Background(), models.CreateOrUpdatePlayerRequest{
		TeamID: team.ID, FirstName: "Jordan", LastName: "Miles",
	})
	require.NoError(t, err)
	_, err = env.players.CreatePlayer(context.Background(), models.CreateOrUpdatePlayerRequest{
		TeamID: other.ID, FirstName: "Riley", LastName: "Stone",
	})
	require.NoError(t, err)
	router := publicRouter(env)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/teams/1/players", nil))

	require.Equal(t, http.StatusOK, w.Code)
	players := decodeJSON[[]models.Player](t, w)
	require.Len(t, players, 1)
	assert.Equal(t, "Jordan", players[0].FirstName)
	assert.Equal(t, "U16 National", players[0].TeamName)
}

func TestPublicUpcoming_HonorsLimitQuery(t *testing.T) {
	env := newTestEnv()
	team := env.addTeam(t, "U16 National", models.TeamLevelNational)
	now := time.Now()
	for i := 1; i <= 6; i++ {
		env.addGame(t, team.ID, now.Add(time.Duration(i)*24*time.Hour), nil, nil)
	}
	router := publicRouter(env)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/games/upcoming", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[[]models.Game](t, w), 3)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/games/upcoming?limit=2", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[[]models.Game](t, w), 2)

	// A nonsense limit falls back to the default.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/games/upcoming?limit=bogus", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[[]models.Game](t, w), 3)
}

func TestPublicRecent_DerivesWins(t *testing.T) {
	env := newTestEnv()
	team := env.addTeam(t, "U16 National", models.TeamLevelNational)
	us, them := 70, 60
	env.addGame(t, team.ID, time.Now().Add(-24*time.Hour), &us, &them)
	router := publicRouter(env)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/games/recent", nil))

	require.Equal(t, http.StatusOK, w.Code)
	games := decodeJSON[[]models.Game](t, w)
	require.Len(t, games, 1)
	require.NotNil(t, games[0].Win)
	assert.True(t, *games[0].Win)
}

func TestPublicStaff_LevelFilter(t *testing.T) {
	env := newTestEnv()
	_, err := env.staff.CreateStaff(context.Background(), models.CreateOrUpdateStaffMemberRequest{
		FullName: "Avery Cole", TeamLevel: models.TeamLevelNational, Position: "Head Coach", Active: true,
	})
	require.NoError(t, err)
	_, err = env.staff.CreateStaff(context.Background(), models.CreateOrUpdateStaffMemberRequest{
		FullName: "Sam Reyes", TeamLevel: models.TeamLevelRegional, Position: "Head Coach", Active: true,
	})
	require.NoError(t, err)
	router := publicRouter(env)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/staff?teamLevel=REGIONAL", nil))
	require.Equal(t, http.StatusOK, w.Code)
	staff := decodeJSON[[]models.StaffMember](t, w)
	require.Len(t, staff, 1)
	assert.Equal(t, "Sam Reyes", staff[0].FullName)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/staff?teamLevel=JUNIOR", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicStaffMember_InactiveHidden(t *testing.T) {
	env := newTestEnv()
	_, err := env.staff.CreateStaff(context.Background(), models.CreateOrUpdateStaffMemberRequest{
		FullName: "Sam Reyes", TeamLevel: models.TeamLevelRegional, Position: "Head Coach", Active: false,
	})
	require.NoError(t, err)
	router := publicRouter(env)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/staff/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
