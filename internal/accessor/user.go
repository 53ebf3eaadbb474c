package accessor

import (
	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/storage"
)

func UsersFromRows(rows []storage.UserRow) []model.User {
	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, model.User{
			Username:  row.Username,
			Name:      row.Name,
			AvatarURL: row.AvatarURL,
		})
	}
	return users
}
