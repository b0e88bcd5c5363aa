package dto

type ExportOutput struct {
	FileName string
	Content  []byte
	Size     int
}
