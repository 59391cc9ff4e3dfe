package repository

// 一覧系の共通ページング条件。
// SortDir は "ASC" のときだけ昇順、それ以外は降順。
type PageQuery struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortDir    string
}
