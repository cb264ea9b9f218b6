package ports

// Logger é o log estruturado usado por services e repositórios.
// args são pares chave/valor; nunca devem carregar senhas em texto puro.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	// With devolve um logger com os campos fixos anexados a cada entrada
	With(args ...any) Logger
}
