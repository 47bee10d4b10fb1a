package ast

func (l *Literal) NodePos() Position { return l.Pos }
func (*Literal) NodeType() NodeType  { return LITERAL }

func (i *Ident) NodePos() Position { return i.Pos }
func (*Ident) NodeType() NodeType  { return IDENT }

func (t *ThisExpr) NodePos() Position { return t.Pos }
func (*ThisExpr) NodeType() NodeType  { return THIS_EXPR }

func (b *BinaryExpr) NodePos() Position { return b.Pos }
func (*BinaryExpr) NodeType() NodeType  { return BINARY_EXPR }

func (l *LogicalExpr) NodePos() Position { return l.Pos }
func (*LogicalExpr) NodeType() NodeType  { return LOGICAL_EXPR }

func (u *UnaryExpr) NodePos() Position { return u.Pos }
func (*UnaryExpr) NodeType() NodeType  { return UNARY_EXPR }

func (u *UpdateExpr) NodePos() Position { return u.Pos }
func (*UpdateExpr) NodeType() NodeType  { return UPDATE_EXPR }

func (a *AssignExpr) NodePos() Position { return a.Pos }
func (*AssignExpr) NodeType() NodeType  { return ASSIGN_EXPR }

func (c *CallExpr) NodePos() Position { return c.Pos }
func (*CallExpr) NodeType() NodeType  { return CALL_EXPR }

func (n *NewExpr) NodePos() Position { return n.Pos }
func (*NewExpr) NodeType() NodeType  { return NEW_EXPR }

func (m *MemberExpr) NodePos() Position { return m.Pos }
func (*MemberExpr) NodeType() NodeType  { return MEMBER_EXPR }

func (a *ArrayExpr) NodePos() Position { return a.Pos }
func (*ArrayExpr) NodeType() NodeType  { return ARRAY_EXPR }

func (o *ObjectExpr) NodePos() Position { return o.Pos }
func (*ObjectExpr) NodeType() NodeType  { return OBJECT_EXPR }

func (p *Property) NodePos() Position { return p.Pos }
func (*Property) NodeType() NodeType  { return PROPERTY }

func (a *ArrowExpr) NodePos() Position { return a.Pos }
func (*ArrowExpr) NodeType() NodeType  { return ARROW_EXPR }

func (f *FunctionExpr) NodePos() Position { return f.Pos }
func (*FunctionExpr) NodeType() NodeType  { return FUNCTION_EXPR }

func (c *ConditionalExpr) NodePos() Position { return c.Pos }
func (*ConditionalExpr) NodeType() NodeType  { return CONDITIONAL_EXPR }

func (s *SequenceExpr) NodePos() Position { return s.Pos }
func (*SequenceExpr) NodeType() NodeType  { return SEQUENCE_EXPR }

func (e *EmitExpr) NodePos() Position { return e.Pos }
func (*EmitExpr) NodeType() NodeType  { return EMIT_EXPR }

func (b *BlockStmt) NodePos() Position { return b.Pos }
func (*BlockStmt) NodeType() NodeType  { return BLOCK_STMT }

func (r *ReturnStmt) NodePos() Position { return r.Pos }
func (*ReturnStmt) NodeType() NodeType  { return RETURN_STMT }

func (v *VarDeclStmt) NodePos() Position { return v.Pos }
func (*VarDeclStmt) NodeType() NodeType  { return VAR_DECL_STMT }

func (e *ExprStmt) NodePos() Position { return e.Pos }
func (*ExprStmt) NodeType() NodeType  { return EXPR_STMT }

func (i *IfStmt) NodePos() Position { return i.Pos }
func (*IfStmt) NodeType() NodeType  { return IF_STMT }

func (w *WhileStmt) NodePos() Position { return w.Pos }
func (*WhileStmt) NodeType() NodeType  { return WHILE_STMT }

func (f *ForStmt) NodePos() Position { return f.Pos }
func (*ForStmt) NodeType() NodeType  { return FOR_STMT }

func (t *TryStmt) NodePos() Position { return t.Pos }
func (*TryStmt) NodeType() NodeType  { return TRY_STMT }

func (s *SwitchStmt) NodePos() Position { return s.Pos }
func (*SwitchStmt) NodeType() NodeType  { return SWITCH_STMT }

func (b *BreakStmt) NodePos() Position { return b.Pos }
func (*BreakStmt) NodeType() NodeType  { return BREAK_STMT }

func (c *ContinueStmt) NodePos() Position { return c.Pos }
func (*ContinueStmt) NodeType() NodeType  { return CONTINUE_STMT }

func (l *LabeledStmt) NodePos() Position { return l.Pos }
func (*LabeledStmt) NodeType() NodeType  { return LABELED_STMT }

func (f *FunctionDecl) NodePos() Position { return f.Pos }
func (*FunctionDecl) NodeType() NodeType  { return FUNCTION_DECL }

func (c *ClassDecl) NodePos() Position { return c.Pos }
func (*ClassDecl) NodeType() NodeType  { return CLASS_DECL }

func (i *ImportDecl) NodePos() Position { return i.Pos }
func (*ImportDecl) NodeType() NodeType  { return IMPORT_DECL }

func (e *ExportDecl) NodePos() Position { return e.Pos }
func (*ExportDecl) NodeType() NodeType  { return EXPORT_DECL }
