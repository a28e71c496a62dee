package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	ParamErrCode            = 10002
	NotFoundErrCode         = 10003
	AuthorizationFailedCode = 10004
	ConflictErrCode         = 10005
	MysqlErrCode            = 10006
	RedisErrCode            = 10007
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr   = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	MysqlErr   = NewErrNo(MysqlErrCode, "Mysql is unable to serve")
	RedisErr   = NewErrNo(RedisErrCode, "Redis is unable to serve")

	NotFoundErr            = NewErrNo(NotFoundErrCode, "Record not found")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authorization has failed")
	ConflictErr            = NewErrNo(ConflictErrCode, "Concurrent update conflict, retry the operation")

	UserNotExistErr     = NewErrNo(NotFoundErrCode, "User does not exist")
	VideoNotExistErr    = NewErrNo(NotFoundErrCode, "Video does not exist")
	PostNotExistErr     = NewErrNo(NotFoundErrCode, "Post does not exist")
	CommentNotExistErr  = NewErrNo(NotFoundErrCode, "Comment does not exist")
	PlaylistNotExistErr = NewErrNo(NotFoundErrCode, "Playlist does not exist")
)

// ConvertErr converts an arbitrary error to an ErrNo, keeping the original
// ErrNo when one is found in the chain.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
