package port

// FrameSource источник кадров (камера)
type FrameSource interface {
	// Read возвращает очередной кадр. ok == false означает, что кадров больше не будет.
	Read() (frame Frame, ok bool)

	Close() error
}

// Display окно для показа кадров
type Display interface {
	// Show выводит кадр в окно
	Show(frame Frame)

	// QuitRequested опрашивает клавиатуру и сообщает, нажата ли клавиша выхода
	QuitRequested() bool

	Close() error
}
