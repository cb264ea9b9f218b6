package valueobjects

import (
	"bytes"
	"encoding/json"
)

// Optional representa um campo de patch que distingue "não enviado" de "enviado como null".
//
//	ausente          -> Set=false
//	"campo": null    -> Set=true, Value=nil (limpar)
//	"campo": valor   -> Set=true, Value=&valor
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some cria um Optional preenchido
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null cria um Optional enviado explicitamente como null
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull indica que o campo foi enviado como null
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// UnmarshalJSON só é chamado quando a chave está presente no documento
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON serializa o valor ou null
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ApplyTo copia o valor para dst apenas se o campo foi enviado
func (o Optional[T]) ApplyTo(dst **T) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}
