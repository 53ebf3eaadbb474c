package storage

import "context"

const listTopics = `
SELECT slug, description FROM topics
`

type TopicRow struct {
	Slug        string
	Description string
}

func (q *Queries) ListTopics(ctx context.Context) ([]TopicRow, error) {
	rows, err := q.db.QueryContext(ctx, listTopics)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TopicRow
	for rows.Next() {
		var i TopicRow
		if err := rows.Scan(&i.Slug, &i.Description); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getTopicBySlug = `
SELECT slug, description FROM topics WHERE slug = $1
`

func (q *Queries) GetTopicBySlug(ctx context.Context, slug string) (TopicRow, error) {
	var i TopicRow
	err := q.db.QueryRowContext(ctx, getTopicBySlug, slug).Scan(&i.Slug, &i.Description)
	return i, err
}

const newTopic = `
INSERT INTO topics (slug, description)
VALUES ($1, $2)
ON CONFLICT (slug) DO NOTHING
`

type NewTopicParams struct {
	Slug        string
	Description string
}

func (q *Queries) NewTopic(ctx context.Context, params NewTopicParams) error {
	_, err := q.db.ExecContext(ctx, newTopic, params.Slug, params.Description)
	return err
}
