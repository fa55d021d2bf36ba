package exception

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

var directory = map[string]ClientError{
	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":           {KindInvariant, "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada"},
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":      {KindInvariant, "tidak dapat membuat user baru karena tipe data tidak sesuai"},
	"REGISTER_USER.USERNAME_LIMIT_CHAR":                   {KindInvariant, "tidak dapat membuat user baru karena karakter username melebihi batas limit"},
	"REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER": {KindInvariant, "tidak dapat membuat user baru karena username mengandung karakter terlarang"},
	"REGISTER_USER.PASSWORD_LIMIT_CHAR":                   {KindInvariant, "tidak dapat membuat user baru karena karakter password melebihi batas limit"},
	domain.CodeRegisterUserUsernameTaken:                  {KindInvariant, "username tidak tersedia"},

	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":      {KindInvariant, "harus mengirimkan username dan password"},
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION": {KindInvariant, "username dan password harus string"},
	domain.CodeUserLoginUserNotFound:              {KindInvariant, "username yang Anda masukkan tidak ditemukan"},
	domain.CodeUserLoginWrongPassword:             {KindAuthentication, "kredensial yang Anda masukkan salah"},

	"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":      {KindInvariant, "tidak dapat menambahkan thread karena properti yang dibutuhkan tidak sesuai"},
	"NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION": {KindInvariant, "title dan body harus string"},
	domain.CodeAddNewThreadUserNotAllowed:         {KindAuthentication, "user tidak dikenal"},

	"ADD_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":      {KindInvariant, "content tidak boleh kosong"},
	"ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": {KindInvariant, "content harus string"},
	domain.CodeAddCommentUserNotAllowed:            {KindAuthentication, "user tidak dikenal"},
	domain.CodeAddCommentThreadNotFound:            {KindNotFound, "thread tidak ditemukan"},

	"ADD_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":      {KindInvariant, "content tidak boleh kosong"},
	"ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION": {KindInvariant, "content harus string"},
	domain.CodeAddReplyUserNotAllowed:            {KindAuthentication, "user tidak dikenal"},
	domain.CodeAddReplyThreadNotFound:            {KindNotFound, "thread tidak ditemukan"},
	domain.CodeAddReplyCommentNotFound:           {KindNotFound, "komentar tidak ditemukan"},

	domain.CodeDeleteCommentUserNotAuthenticated: {KindAuthentication, "user tidak dikenal"},
	domain.CodeDeleteCommentThreadNotFound:       {KindNotFound, "thread tidak ditemukan"},
	domain.CodeDeleteCommentCommentNotFound:      {KindNotFound, "komentar tidak ditemukan"},
	domain.CodeDeleteCommentUserNotAllowed:       {KindAuthorization, "anda tidak berhak menghapus komentar ini"},

	domain.CodeDeleteReplyUserNotAuthenticated: {KindAuthentication, "user tidak dikenal"},
	domain.CodeDeleteReplyThreadNotFound:       {KindNotFound, "thread tidak ditemukan"},
	domain.CodeDeleteReplyCommentNotFound:      {KindNotFound, "komentar tidak ditemukan"},
	domain.CodeDeleteReplyReplyNotFound:        {KindNotFound, "balasan tidak ditemukan"},
	domain.CodeDeleteReplyUserNotAllowed:       {KindAuthorization, "anda tidak berhak menghapus balasan ini"},

	domain.CodeLikeCommentThreadNotFound:       {KindNotFound, "thread tidak ditemukan"},
	domain.CodeLikeCommentCommentNotFound:      {KindNotFound, "komentar tidak ditemukan"},
	domain.CodeLikeCommentUserNotAuthenticated: {KindAuthentication, "user tidak dikenal"},

	domain.CodeGetThreadDetailThreadNotFound:   {KindNotFound, "thread tidak ditemukan"},
	domain.CodeGetCommentDetailRepliesNotFound: {KindNotFound, "balasan komentar tidak ditemukan"},
}
