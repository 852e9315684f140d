// File: controllers/test_helpers_test.go
package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"courtside/models"
	"courtside/services"
)

// In-memory stores backing the controller tests. They mirror the
// ordering the real queries promise where a test depends on it.

type memTeamStore struct {
	teams  map[int64]models.Team
	nextID int64
}

func newMemTeamStore() *memTeamStore {
	return &memTeamStore{teams: map[int64]models.Team{}, nextID: 1}
}

func (m *memTeamStore) GetAll(_ context.Context) ([]models.Team, error) {
	var out []models.Team
	for _, t := range m.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memTeamStore) GetByID(_ context.Context, id int64) (*models.Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return nil, models.ErrTeamNotFound
	}
	return &t, nil
}

func (m *memTeamStore) Create(_ context.Context, team *models.Team) error {
	team.ID = m.nextID
	m.nextID++
	m.teams[team.ID] = *team
	return nil
}

func (m *memTeamStore) Update(_ context.Context, team *models.Team) error {
	if _, ok := m.teams[team.ID]; !ok {
		return models.ErrTeamNotFound
	}
	m.teams[team.ID] = *team
	return nil
}

func (m *memTeamStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.teams[id]; !ok {
		return models.ErrTeamNotFound
	}
	delete(m.teams, id)
	return nil
}

type memGameStore struct {
	games  []models.Game
	nextID int64
}

func newMemGameStore() *memGameStore { return &memGameStore{nextID: 1} }

func (m *memGameStore) GetAll(_ context.Context) ([]models.Game, error) {
	out := append([]models.Game(nil), m.games...)
	sort.Slice(out, func(i, j int) bool { return out[i].GameDateTime.Before(out[j].GameDateTime) })
	return out, nil
}

func (m *memGameStore) GetAfter(_ context.Context, after time.Time) ([]models.Game, error) {
	all, _ := m.GetAll(context.Background())
	var out []models.Game
	for _, g := range all {
		if g.GameDateTime.After(after) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memGameStore) GetBefore(_ context.Context, before time.Time) ([]models.Game, error) {
	all, _ := m.GetAll(context.Background())
	var out []models.Game
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].GameDateTime.Before(before) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (m *memGameStore) GetByID(_ context.Context, id int64) (*models.Game, error) {
	for _, g := range m.games {
		if g.ID == id {
			copy := g
			return &copy, nil
		}
	}
	return nil, models.ErrGameNotFound
}

func (m *memGameStore) Create(_ context.Context, game *models.Game) error {
	game.ID = m.nextID
	m.nextID++
	m.games = append(m.games, *game)
	return nil
}

func (m *memGameStore) Update(_ context.Context, game *models.Game) error {
	for i, g := range m.games {
		if g.ID == game.ID {
			m.games[i] = *game
			return nil
		}
	}
	return models.ErrGameNotFound
}

func (m *memGameStore) Delete(_ context.Context, id int64) error {
	for i, g := range m.games {
		if g.ID == id {
			m.games = append(m.games[:i], m.games[i+1:]...)
			return nil
		}
	}
	return models.ErrGameNotFound
}

type memPlayerStore struct {
	players map[int64]models.Player
	nextID  int64
}

func newMemPlayerStore() *memPlayerStore {
	return &memPlayerStore{players: map[int64]models.Player{}, nextID: 1}
}

func (m *memPlayerStore) GetByTeamID(_ context.Context, teamID int64) ([]models.Player, error) {
	var out []models.Player
	for _, p := range m.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memPlayerStore) GetByID(_ context.Context, id int64) (*models.Player, error) {
	p, ok := m.players[id]
	if !ok {
		return nil, models.ErrPlayerNotFound
	}
	return &p, nil
}

func (m *memPlayerStore) Create(_ context.Context, player *models.Player) error {
	player.ID = m.nextID
	m.nextID++
	m.players[player.ID] = *player
	return nil
}

func (m *memPlayerStore) Update(_ context.Context, player *models.Player) error {
	if _, ok := m.players[player.ID]; !ok {
		return models.ErrPlayerNotFound
	}
	m.players[player.ID] = *player
	return nil
}

func (m *memPlayerStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.players[id]; !ok {
		return models.ErrPlayerNotFound
	}
	delete(m.players, id)
	return nil
}

type memStaffStore struct {
	staff  map[int64]models.StaffMember
	nextID int64
}

func newMemStaffStore() *memStaffStore {
	return &memStaffStore{staff: map[int64]models.StaffMember{}, nextID: 1}
}

func (m *memStaffStore) GetAll(_ context.Context) ([]models.StaffMember, error) {
	var out []models.StaffMember
	for _, s := range m.staff {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *memStaffStore) GetActive(_ context.Context, level *models.TeamLevel) ([]models.StaffMember, error) {
	all, _ := m.GetAll(context.Background())
	var out []models.StaffMember
	for _, s := range all {
		if !s.Active {
			continue
		}
		if level != nil && s.TeamLevel != *level {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memStaffStore) GetByID(_ context.Context, id int64) (*models.StaffMember, error) {
	s, ok := m.staff[id]
	if !ok {
		return nil, models.ErrStaffNotFound
	}
	return &s, nil
}

func (m *memStaffStore) Create(_ context.Context, staff *models.StaffMember) error {
	staff.ID = m.nextID
	m.nextID++
	m.staff[staff.ID] = *staff
	return nil
}

func (m *memStaffStore) Update(_ context.Context, staff *models.StaffMember) error {
	if _, ok := m.staff[staff.ID]; !ok {
		return models.ErrStaffNotFound
	}
	m.staff[staff.ID] = *staff
	return nil
}

func (m *memStaffStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.staff[id]; !ok {
		return models.ErrStaffNotFound
	}
	delete(m.staff, id)
	return nil
}

// testEnv bundles the services and stores a controller test needs.
type testEnv struct {
	teams   *services.TeamService
	players *services.PlayerService
	games   *services.GameService
	staff   *services.StaffService

	teamStore   *memTeamStore
	playerStore *memPlayerStore
	gameStore   *memGameStore
	staffStore  *memStaffStore
}

func newTestEnv() *testEnv {
	env := &testEnv{
		teamStore:   newMemTeamStore(),
		playerStore: newMemPlayerStore(),
		gameStore:   newMemGameStore(),
		staffStore:  newMemStaffStore(),
	}
	env.teams = services.NewTeamService(env.teamStore)
	env.players = services.NewPlayerService(env.playerStore, env.teams)
	env.games = services.NewGameService(env.gameStore, env.teams)
	env.staff = services.NewStaffService(env.staffStore)
	return env
}

func (env *testEnv) addTeam(t *testing.T, name string, level models.TeamLevel) *models.Team {
	t.Helper()
	team, err := env.teams.CreateTeam(context.Background(), models.CreateOrUpdateTeamRequest{
		Name: name, Level: level, Season: "2024-2025",
	})
	require.NoError(t, err)
	return team
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func init() {
	gin.SetMode(gin.TestMode)
}
