package domain

const DefaultPageSize = 50

type PageRequest struct {
	Page int
	Size int
}

func NewPageRequest(page, size int) PageRequest {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 500 {
		size = DefaultPageSize
	}
	return PageRequest{Page: page, Size: size}
}

func (p PageRequest) Offset() uint64 {
	return uint64(p.Page * p.Size)
}

func (p PageRequest) Limit() uint64 {
	return uint64(p.Size)
}
