// File: store/schema.go
package store

const schema = `
CREATE TABLE IF NOT EXISTS teams (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(150) NOT NULL,
	level VARCHAR(40) NOT NULL,
	season VARCHAR(40),
	description VARCHAR(1000)
);

CREATE TABLE IF NOT EXISTS players (
	id BIGSERIAL PRIMARY KEY,
	first_name VARCHAR(80) NOT NULL,
	last_name VARCHAR(80) NOT NULL,
	jersey_number INT,
	position VARCHAR(20),
	height VARCHAR(50),
	grad_year INT,
	country VARCHAR(120),
	photo_url VARCHAR(500),
	team_id BIGINT NOT NULL,
	CONSTRAINT fk_players_team FOREIGN KEY (team_id) REFERENCES teams (id)
);

CREATE TABLE IF NOT EXISTS staff_members (
	id BIGSERIAL PRIMARY KEY,
	full_name VARCHAR(120) NOT NULL,
	team_level VARCHAR(40) NOT NULL,
	position VARCHAR(120) NOT NULL,
	display_order INT NOT NULL DEFAULT 0,
	primary_photo_url VARCHAR(1000),
	secondary_photo_url VARCHAR(1000),
	bio TEXT,
	email VARCHAR(255),
	phone VARCHAR(50),
	active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS games (
	id BIGSERIAL PRIMARY KEY,
	team_id BIGINT NOT NULL,
	opponent VARCHAR(150) NOT NULL,
	game_date_time TIMESTAMPTZ NOT NULL,
	home_away VARCHAR(10) NOT NULL,
	location VARCHAR(200) NOT NULL,
	score_us INT,
	score_them INT,
	conference_game BOOLEAN NOT NULL DEFAULT FALSE,
	notes VARCHAR(1000),
	CONSTRAINT fk_games_team FOREIGN KEY (team_id) REFERENCES teams (id)
);

CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	full_name VARCHAR(120) NOT NULL,
	email VARCHAR(120) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	enabled BOOLEAN NOT NULL DEFAULT TRUE,
	CONSTRAINT uk_users_email UNIQUE (email)
);
`
