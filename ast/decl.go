package ast

// ClassDecl represents a class declaration.
type ClassDecl struct {
	ASTBase

	Name string
	Mods Modifiers

	// Super is nil if the class extends nothing.
	Super *TypeRef

	// Interfaces are recorded by name only.
	Interfaces []string

	Fields  []*FieldDecl
	Methods []*MethodDecl
	Ctors   []*ConstructorDecl
}

// FuncDecl represents a top-level function.
type FuncDecl struct {
	ASTBase

	Mods       Modifiers
	ReturnType *TypeRef
	Name       string
	Params     []*Param

	// Body is nil for a bodiless declaration.
	Body *Block
}

// GlobalVarDecl represents a top-level variable declaration.
type GlobalVarDecl struct {
	ASTBase

	Mods Modifiers
	Type *TypeRef
	Vars []*Declarator
}

func (*ClassDecl) declNode()     {}
func (*FuncDecl) declNode()      {}
func (*GlobalVarDecl) declNode() {}

// -----------------------------------------------------------------------------

// FieldDecl represents a field declaration inside a class.
type FieldDecl struct {
	ASTBase

	Mods Modifiers
	Type *TypeRef
	Vars []*Declarator
}

// MethodDecl represents a method declaration inside a class.
type MethodDecl struct {
	ASTBase

	Mods       Modifiers
	ReturnType *TypeRef
	Name       string
	Params     []*Param

	// Body is nil for abstract (bodiless) methods.
	Body *Block
}

// ConstructorDecl represents a constructor declaration inside a class.
type ConstructorDecl struct {
	ASTBase

	Mods   Modifiers
	Name   string
	Params []*Param
	Body   *Block
}
