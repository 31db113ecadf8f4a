package domain

import "errors"

var (
	MessageSuccessFollow        = "user followed successfully"
	MessageSuccessUnfollow      = "user unfollowed successfully"
	MessageSuccessGetFollowers  = "success get followers"
	MessageSuccessGetFollowing  = "success get following"

	MessageFailedFollow       = "failed to follow user"
	MessageFailedUnfollow     = "failed to unfollow user"
	MessageFailedGetFollowers = "failed to get followers"
	MessageFailedGetFollowing = "failed to get following"

	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
)

type FollowUserResponse struct {
	Following bool `json:"following"`
}
