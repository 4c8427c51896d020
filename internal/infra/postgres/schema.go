package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGINT PRIMARY KEY,
	chat_id       BIGINT NOT NULL,
	first_name    TEXT NOT NULL DEFAULT '',
	username      TEXT NOT NULL DEFAULT '',
	language_code TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_settings (
	user_id     BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	quiz_length INT NOT NULL DEFAULT 10,
	quiz_mode   TEXT NOT NULL DEFAULT 'mixed',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS bookmarks (
	user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	country_id TEXT NOT NULL,
	name       TEXT NOT NULL,
	region     TEXT NOT NULL DEFAULT '',
	flag       TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, country_id)
);

CREATE TABLE IF NOT EXISTS quiz_results (
	id           UUID PRIMARY KEY,
	user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	session_id   UUID NOT NULL UNIQUE,
	quiz_mode    TEXT NOT NULL,
	score        INT NOT NULL,
	total        INT NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results(user_id, completed_at DESC);

CREATE TABLE IF NOT EXISTS quiz_result_answers (
	result_id      UUID NOT NULL REFERENCES quiz_results(id) ON DELETE CASCADE,
	position       INT NOT NULL,
	category       TEXT NOT NULL,
	country_id     TEXT NOT NULL,
	prompt         TEXT NOT NULL,
	user_answer    TEXT NOT NULL DEFAULT '',
	correct_answer TEXT NOT NULL,
	is_correct     BOOLEAN NOT NULL,
	PRIMARY KEY (result_id, position)
);
`

// Migrate creates the tables the bot needs if they do not exist yet.
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
