package storage

import "context"

const listUsers = `
SELECT username, name, avatar_url FROM users
`

type UserRow struct {
	Username  string
	Name      string
	AvatarURL string
}

func (q *Queries) ListUsers(ctx context.Context) ([]UserRow, error) {
	rows, err := q.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []UserRow
	for rows.Next() {
		var i UserRow
		if err := rows.Scan(&i.Username, &i.Name, &i.AvatarURL); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getUserByUsername = `
SELECT username, name, avatar_url FROM users WHERE username = $1
`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (UserRow, error) {
	var i UserRow
	err := q.db.QueryRowContext(ctx, getUserByUsername, username).
		Scan(&i.Username, &i.Name, &i.AvatarURL)
	return i, err
}

const newUser = `
INSERT INTO users (username, name, avatar_url)
VALUES ($1, $2, $3)
ON CONFLICT (username) DO NOTHING
`

type NewUserParams struct {
	Username  string
	Name      string
	AvatarURL string
}

func (q *Queries) NewUser(ctx context.Context, params NewUserParams) error {
	_, err := q.db.ExecContext(ctx, newUser, params.Username, params.Name, params.AvatarURL)
	return err
}
