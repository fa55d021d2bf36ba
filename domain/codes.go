package domain

// Use case failure codes.
const (
	CodeAddNewThreadUserNotAllowed = "ADD_NEW_THREAD_USE_CASE.USER_NOT_ALLOWED"

	CodeAddCommentUserNotAllowed = "ADD_COMMENT_USE_CASE.USER_NOT_ALLOWED"
	CodeAddCommentThreadNotFound = "ADD_COMMENT_USE_CASE.THREAD_NOT_FOUND"

	CodeAddReplyUserNotAllowed  = "ADD_REPLY_USE_CASE.USER_NOT_ALLOWED"
	CodeAddReplyThreadNotFound  = "ADD_REPLY_USE_CASE.THREAD_NOT_FOUND"
	CodeAddReplyCommentNotFound = "ADD_REPLY_USE_CASE.COMMENT_NOT_FOUND"

	CodeDeleteCommentUserNotAuthenticated = "DELETE_COMMENT_USE_CASE.USER_NOT_AUTHENTICATED"
	CodeDeleteCommentThreadNotFound       = "DELETE_COMMENT_USE_CASE.THREAD_NOT_FOUND"
	CodeDeleteCommentCommentNotFound      = "DELETE_COMMENT_USE_CASE.COMMENT_NOT_FOUND"
	CodeDeleteCommentUserNotAllowed       = "DELETE_COMMENT_USE_CASE.USER_NOT_ALLOWED"

	CodeDeleteReplyUserNotAuthenticated = "DELETE_REPLY_USE_CASE.USER_NOT_AUTHENTICATED"
	CodeDeleteReplyThreadNotFound       = "DELETE_REPLY_USE_CASE.THREAD_NOT_FOUND"
	CodeDeleteReplyCommentNotFound      = "DELETE_REPLY_USE_CASE.COMMENT_NOT_FOUND"
	CodeDeleteReplyReplyNotFound        = "DELETE_REPLY_USE_CASE.REPLY_NOT_FOUND"
	CodeDeleteReplyUserNotAllowed       = "DELETE_REPLY_USE_CASE.USER_NOT_ALLOWED"

	CodeLikeCommentThreadNotFound       = "LIKE_COMMENT_USE_CASE.THREAD_NOT_FOUND"
	CodeLikeCommentCommentNotFound      = "LIKE_COMMENT_USE_CASE.COMMENT_NOT_FOUND"
	CodeLikeCommentUserNotAuthenticated = "LIKE_COMMENT_USE_CASE.USER_NOT_AUTHENTICATED"

	CodeGetThreadDetailThreadNotFound   = "GET_THREAD_DETAIL_USE_CASE.THREAD_NOT_FOUND"
	CodeGetCommentDetailRepliesNotFound = "GET_COMMENT_DETAIL_USE_CASE.REPLIES_NOT_FOUND"

	CodeRegisterUserUsernameTaken = "REGISTER_USER_USE_CASE.USERNAME_TAKEN"
	CodeUserLoginUserNotFound     = "USER_LOGIN_USE_CASE.USER_NOT_FOUND"
	CodeUserLoginWrongPassword    = "USER_LOGIN_USE_CASE.WRONG_PASSWORD"
)
