package minilang

// Type is a MiniLang type as written in source. The zero value marks an
// absent annotation.
type Type string

const (
	TypeInt    Type = "int"
	TypeFloat  Type = "float"
	TypeBool   Type = "bool"
	TypeString Type = "string"

	// TypeVoid is the return type of a function that declares none. It has
	// no source keyword and can only be produced by omission.
	TypeVoid Type = "void"
)

// typeForKeyword maps the type-keyword token kinds to their types.
var typeForKeyword = map[TokenKind]Type{
	TYPE_INT:    TypeInt,
	TYPE_FLOAT:  TypeFloat,
	TYPE_BOOL:   TypeBool,
	TYPE_STRING: TypeString,
}
