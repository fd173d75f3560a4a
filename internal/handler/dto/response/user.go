package response

import (
	"github.com/jinzhu/copier"

	"shareit/internal/usecase/queries"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	res := &UserResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromUserViews(views []*queries.UserView) ([]*UserResponse, error) {
	res := make([]*UserResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
