package example

// builtinExamples 是内置例句表的原始数据，覆盖常见英语单词，
// 每个单词固定5条例句。键为小写单词原形，启动后只读。
var builtinExamples = map[string][]Sentence{
	"abandon": {
		{English: "He decided to abandon the project halfway.", Chinese: "他决定中途放弃这个项目。"},
		{English: "Never abandon hope, even in difficult times.", Chinese: "即使在困难时期，也永远不要放弃希望。"},
		{English: "The sailors had to abandon the sinking ship.", Chinese: "水手们不得不弃沉船逃生。"},
		{English: "Please do not abandon your responsibilities.", Chinese: "请不要放弃你的责任。"},
		{English: "The city was abandoned after the earthquake.", Chinese: "地震后这座城市被遗弃了。"},
	},
	"ability": {
		{English: "She has the ability to solve complex problems.", Chinese: "她有解决复杂问题的能力。"},
		{English: "His ability to speak three languages is impressive.", Chinese: "他会说三种语言的能力令人印象深刻。"},
		{English: "We should develop our abilities continuously.", Chinese: "我们应该不断发展我们的能力。"},
		{English: "Ability alone is not enough; hard work matters too.", Chinese: "光有能力是不够的；努力也很重要。"},
		{English: "The team showed great ability under pressure.", Chinese: "团队在压力下展现了出色的能力。"},
	},
	"able": {
		{English: "I am able to finish the work on time.", Chinese: "我能按时完成工作。"},
		{English: "She is able to play the piano very well.", Chinese: "她很擅长弹钢琴。"},
		{English: "Will you be able to attend the meeting tomorrow?", Chinese: "明天你能参加会议吗？"},
		{English: "He is able to speak English fluently.", Chinese: "他能流利地说英语。"},
		{English: "We were able to solve the problem together.", Chinese: "我们能够一起解决这个问题。"},
	},
	"about": {
		{English: "Tell me about your family.", Chinese: "告诉我关于你家人的事。"},
		{English: "The book is about history of China.", Chinese: "这本书是关于中国历史的。"},
		{English: "I was about to leave when you called.", Chinese: "你打电话来的时候我正准备离开。"},
		{English: "What are you thinking about?", Chinese: "你在想什么？"},
		{English: "She knows a lot about art.", Chinese: "她很懂艺术。"},
	},
	"above": {
		{English: "The plane flew above the clouds.", Chinese: "飞机在云层上方飞行。"},
		{English: "The temperature is above average today.", Chinese: "今天的气温高于平均水平。"},
		{English: "Put the vase above the shelf.", Chinese: "把花瓶放在架子上面。"},
		{English: "Her grades are above the class average.", Chinese: "她的成绩高于班级平均分。"},
		{English: "Values above 100 are not allowed.", Chinese: "不允许大于100的值。"},
	},
	"accept": {
		{English: "I accept your apology.", Chinese: "我接受你的道歉。"},
		{English: "She decided to accept the job offer.", Chinese: "她决定接受这份工作。"},
		{English: "Please accept this gift as a token of gratitude.", Chinese: "请收下这份礼物表示感谢。"},
		{English: "We cannot accept late submissions.", Chinese: "我们不能接受迟交的作品。"},
		{English: "He learned to accept defeat gracefully.", Chinese: "他学会了优雅地接受失败。"},
	},
	"accident": {
		{English: "He was injured in a car accident.", Chinese: "他在车祸中受伤了。"},
		{English: "The accident happened at midnight.", Chinese: "事故发生在午夜。"},
		{English: "Carelessness often leads to accidents.", Chinese: "粗心大意经常导致事故。"},
		{English: "Fortunately, no one was hurt in the accident.", Chinese: "幸运的是，事故中没有人受伤。"},
		{English: "Traffic accidents can be prevented.", Chinese: "交通事故是可以预防的。"},
	},
	"account": {
		{English: "I need to open a bank account.", Chinese: "我需要开一个银行账户。"},
		{English: "Please give a detailed account of the incident.", Chinese: "请详细说明这起事件。"},
		{English: "Her account balance is very low.", Chinese: "她的账户余额很低。"},
		{English: "Take into account all factors before deciding.", Chinese: "做决定前要考虑所有因素。"},
		{English: "He created a new email account.", Chinese: "他创建了一个新的电子邮件账户。"},
	},
	"achieve": {
		{English: "She worked hard to achieve her goals.", Chinese: "她努力工作以实现她的目标。"},
		{English: "You can achieve anything if you try hard enough.", Chinese: "如果你足够努力，你可以实现任何目标。"},
		{English: "The team achieved great success last year.", Chinese: "团队去年取得了巨大的成功。"},
		{English: "It takes time to achieve mastery.", Chinese: "达到精通需要时间。"},
		{English: "We must achieve better results next time.", Chinese: "下次我们必须取得更好的结果。"},
	},
	"across": {
		{English: "He walked across the street.", Chinese: "他穿过了街道。"},
		{English: "The restaurant is just across the road.", Chinese: "餐厅就在马路对面。"},
		{English: "They traveled across Europe.", Chinese: "他们穿越欧洲旅行。"},
		{English: "She looked across the room at me.", Chinese: "她隔着房间看着我。"},
		{English: "The news spread quickly across the country.", Chinese: "新闻很快在全国传播开来。"},
	},
	"act": {
		{English: "You need to act quickly.", Chinese: "你需要迅速行动。"},
		{English: "She acted bravely in the crisis.", Chinese: "她在危机中表现勇敢。"},
		{English: "Don't just speak, you must act.", Chinese: "不要只说不做，你必须行动。"},
		{English: "He acted as if nothing had happened.", Chinese: "他表现得好像什么都没发生一样。"},
		{English: "The play was acted by famous actors.", Chinese: "这出戏由著名演员演出。"},
	},
	"action": {
		{English: "Actions speak louder than words.", Chinese: "行动胜于言语。"},
		{English: "We need to take immediate action.", Chinese: "我们需要立即采取行动。"},
		{English: "The movie was full of exciting action scenes.", Chinese: "这部电影充满了刺激的动作场面。"},
		{English: "Her quick action saved the day.", Chinese: "她的迅速行动扭转了局面。"},
		{English: "Think before you take action.", Chinese: "行动前要三思。"},
	},
	"active": {
		{English: "She leads an active lifestyle.", Chinese: "她过着积极的生活方式。"},
		{English: "He is very active in school activities.", Chinese: "他积极参加学校活动。"},
		{English: "The volcano is still active.", Chinese: "这座火山仍然活跃。"},
		{English: "Stay active to maintain good health.", Chinese: "保持活跃以维持健康。"},
		{English: "She is an active member of the community.", Chinese: "她是社区的积极成员。"},
	},
	"actual": {
		{English: "The actual cost was higher than expected.", Chinese: "实际成本比预期的要高。"},
		{English: "This is the actual reason for his departure.", Chinese: "这是他离开的真实原因。"},
		{English: "What were the actual results?", Chinese: "实际结果是什么？"},
		{English: "The story is based on actual events.", Chinese: "这个故事是根据真实事件改编的。"},
		{English: "Let me show you the actual product.", Chinese: "让我给你看实际的产品。"},
	},
	"add": {
		{English: "Please add some sugar to my coffee.", Chinese: "请给我的咖啡加点糖。"},
		{English: "She added a new chapter to the book.", Chinese: "她在书中加了一个新章节。"},
		{English: "If you add 5 and 3, you get 8.", Chinese: "5加3等于8。"},
		{English: "Don't forget to add your signature.", Chinese: "别忘了加上你的签名。"},
		{English: "The bad weather added to our difficulties.", Chinese: "恶劣天气增加了我们的困难。"},
	},
	"addition": {
		{English: "In addition to English, she speaks French.", Chinese: "除了英语，她还会说法语。"},
		{English: "The new product is a welcome addition.", Chinese: "新产品是一个受欢迎的补充。"},
		{English: "He did the addition quickly in his head.", Chinese: "他很快在脑子里完成了加法。"},
		{English: "There was an addition to the family.", Chinese: "家庭里添了新成员。"},
		{English: "In addition, we need more resources.", Chinese: "此外，我们需要更多资源。"},
	},
	"additional": {
		{English: "We need additional funding for the project.", Chinese: "我们需要额外的项目资金。"},
		{English: "Please provide additional information.", Chinese: "请提供更多信息。"},
		{English: "There is an additional charge for extra luggage.", Chinese: "额外行李需要付费。"},
		{English: "She requested additional time to complete the task.", Chinese: "她请求额外时间来完成这项任务。"},
		{English: "The store offers additional discounts on weekends.", Chinese: "周末商店提供额外折扣。"},
	},
	"address": {
		{English: "Please write your address clearly.", Chinese: "请清楚地写下你的地址。"},
		{English: "He will address the meeting tomorrow.", Chinese: "他明天将在会议上发表讲话。"},
		{English: "We need to address this problem immediately.", Chinese: "我们需要立即解决这个问题。"},
		{English: "Her email address has changed.", Chinese: "她的电子邮件地址变了。"},
		{English: "The president addressed the nation on TV.", Chinese: "总统在电视上向全国发表讲话。"},
	},
	"admit": {
		{English: "He admitted his mistake.", Chinese: "他承认了自己的错误。"},
		{English: "She refused to admit that she was wrong.", Chinese: "她拒绝承认自己错了。"},
		{English: "The theater admits 500 people.", Chinese: "这个剧场可容纳500人。"},
		{English: "I must admit I was surprised.", Chinese: "我必须承认我很惊讶。"},
		{English: "Students must show ID to be admitted.", Chinese: "学生必须出示证件才能进入。"},
	},
	"advance": {
		{English: "Technology continues to advance rapidly.", Chinese: "技术继续快速发展。"},
		{English: "She received an advance on her salary.", Chinese: "她预支了部分工资。"},
		{English: "We need to plan ahead and advance carefully.", Chinese: "我们需要提前计划并谨慎推进。"},
		{English: "The army made a rapid advance.", Chinese: "军队迅速推进。"},
		{English: "Please let me know in advance if you can't come.", Chinese: "如果不能来请提前通知我。"},
	},
	"advantage": {
		{English: "She has the advantage of experience.", Chinese: "她有经验的优势。"},
		{English: "What are the advantages of this plan?", Chinese: "这个计划有什么优点？"},
		{English: "He took advantage of the opportunity.", Chinese: "他利用了这个机会。"},
		{English: "Speed is our main advantage.", Chinese: "速度是我们主要的优势。"},
		{English: "There is no advantage in complaining.", Chinese: "抱怨没有任何好处。"},
	},
	"advice": {
		{English: "Can you give me some advice?", Chinese: "你能给我一些建议吗？"},
		{English: "She followed her teacher's advice.", Chinese: "她听从了老师的建议。"},
		{English: "His advice was very helpful.", Chinese: "他的建议很有帮助。"},
		{English: "I need some advice on buying a car.", Chinese: "我需要一些买车的建议。"},
		{English: "Take my advice and don't do it.", Chinese: "听我的劝，别这么做。"},
	},
	"advise": {
		{English: "I advise you to be careful.", Chinese: "我建议你小心。"},
		{English: "The doctor advised him to rest.", Chinese: "医生建议他休息。"},
		{English: "Can you advise me on this matter?", Chinese: "在这件事上你能给我建议吗？"},
		{English: "She advises the company on strategy.", Chinese: "她在战略方面为公司提供建议。"},
		{English: "I was advised not to go there alone.", Chinese: "有人建议我不要独自去那里。"},
	},
	"afford": {
		{English: "I can't afford a new car right now.", Chinese: "我现在买不起新车。"},
		{English: "We can't afford to make mistakes.", Chinese: "我们承担不起犯错。"},
		{English: "She can afford to travel abroad.", Chinese: "她负担得起出国旅行。"},
		{English: "Can you afford the time for this project?", Chinese: "你能抽出时间做这个项目吗？"},
		{English: "They couldn't afford the expensive treatment.", Chinese: "他们负担不起昂贵的治疗。"},
	},
	"afraid": {
		{English: "Don't be afraid of making mistakes.", Chinese: "别害怕犯错。"},
		{English: "She is afraid of spiders.", Chinese: "她害怕蜘蛛。"},
		{English: "I'm afraid I can't help you.", Chinese: "恐怕我帮不了你。"},
		{English: "He was afraid to speak in public.", Chinese: "他不敢在公共场合说话。"},
		{English: "Are you afraid of the dark?", Chinese: "你怕黑吗？"},
	},
	"agree": {
		{English: "I agree with your opinion.", Chinese: "我同意你的观点。"},
		{English: "They couldn't agree on a plan.", Chinese: "他们无法就计划达成一致。"},
		{English: "She agreed to help us.", Chinese: "她同意帮助我们。"},
		{English: "We finally agreed on the price.", Chinese: "我们终于在价格上达成一致。"},
		{English: "Do you agree with this decision?", Chinese: "你同意这个决定吗？"},
	},
	"agreement": {
		{English: "They reached a mutual agreement.", Chinese: "他们达成了共识。"},
		{English: "Please sign the agreement.", Chinese: "请在协议上签字。"},
		{English: "The agreement takes effect next month.", Chinese: "协议下个月生效。"},
		{English: "We have an agreement to share the costs.", Chinese: "我们有分担成本的协议。"},
		{English: "Breaking the agreement has consequences.", Chinese: "违反协议会有后果。"},
	},
	"allow": {
		{English: "Please allow me to explain.", Chinese: "请允许我解释。"},
		{English: "The rules don't allow smoking here.", Chinese: "规定禁止在这里吸烟。"},
		{English: "Her parents allowed her to go to the party.", Chinese: "她的父母允许她去参加聚会。"},
		{English: "Time allows for careful consideration.", Chinese: "时间允许仔细考虑。"},
		{English: "The window allows fresh air to enter.", Chinese: "窗户让新鲜空气进入。"},
	},
	"almost": {
		{English: "I'm almost finished with my homework.", Chinese: "我的作业快完成了。"},
		{English: "It's almost time to leave.", Chinese: "快到离开的时间了。"},
		{English: "She almost missed the bus.", Chinese: "她差点错过公交车。"},
		{English: "The project is almost complete.", Chinese: "项目几乎完成了。"},
		{English: "He knows almost everyone in town.", Chinese: "他几乎认识镇上的每个人。"},
	},
	"alone": {
		{English: "I prefer to be alone when I study.", Chinese: "我学习时更喜欢一个人。"},
		{English: "She lived alone for many years.", Chinese: "她独自生活了很多年。"},
		{English: "You cannot do it alone.", Chinese: "你一个人做不到。"},
		{English: "Let him be alone for a while.", Chinese: "让他独自待一会儿。"},
		{English: "The dog was left alone at home.", Chinese: "狗被独自留在了家里。"},
	},
	"along": {
		{English: "Walk along the river.", Chinese: "沿着河边走。"},
		{English: "She came along with us.", Chinese: "她和我们一起来。"},
		{English: "We drove along the coast.", Chinese: "我们沿着海岸开车。"},
		{English: "He hummed a tune as he walked along.", Chinese: "他边走边哼着曲子。"},
		{English: "The path runs along the edge of the forest.", Chinese: "小路沿着森林边缘延伸。"},
	},
	"already": {
		{English: "I have already finished my breakfast.", Chinese: "我已经吃完早餐了。"},
		{English: "It's already too late.", Chinese: "已经太晚了。"},
		{English: "She is already there.", Chinese: "她已经到了。"},
		{English: "We already knew about the news.", Chinese: "我们已经知道这个消息了。"},
		{English: "The meeting is already over.", Chinese: "会议已经结束了。"},
	},
	"also": {
		{English: "She speaks English and also French.", Chinese: "她说英语，也会说法语。"},
		{English: "I also want to go.", Chinese: "我也想去。"},
		{English: "He is smart and also kind.", Chinese: "他既聪明又善良。"},
		{English: "The hotel has a pool and also a gym.", Chinese: "这家酒店有游泳池，还有健身房。"},
		{English: "Not only him, but also his brother came.", Chinese: "不仅他来了，他兄弟也来了。"},
	},
	"although": {
		{English: "Although it was raining, we went out.", Chinese: "虽然下雨，我们还是出去了。"},
		{English: "Although she is young, she is very capable.", Chinese: "虽然她年轻，但很有能力。"},
		{English: "I enjoyed the movie, although it was long.", Chinese: "虽然电影很长，但我很喜欢。"},
		{English: "Although he tried hard, he failed.", Chinese: "虽然他很努力，但还是失败了。"},
		{English: "Although the car is old, it runs well.", Chinese: "虽然车旧了，但跑得很好。"},
	},
	"always": {
		{English: "She always arrives on time.", Chinese: "她总是准时到达。"},
		{English: "I will always remember you.", Chinese: "我会永远记得你。"},
		{English: "He is always happy to help.", Chinese: "他总是乐于助人。"},
		{English: "They always argue about money.", Chinese: "他们总是因为钱争吵。"},
		{English: "The sun always rises in the east.", Chinese: "太阳总是从东方升起。"},
	},
	"among": {
		{English: "She is the most talented among us.", Chinese: "她是我们中最有才华的。"},
		{English: "The decision was made among the team members.", Chinese: "决定是由团队成员共同做出的。"},
		{English: "He is popular among his classmates.", Chinese: "他在同学中很受欢迎。"},
		{English: "Divide the money among the three of you.", Chinese: "钱你们三个人分。"},
		{English: "Choose among these options.", Chinese: "在这些选项中选择。"},
	},
	"amount": {
		{English: "A large amount of money was donated.", Chinese: "捐赠了一大笔钱。"},
		{English: "The amount of work is overwhelming.", Chinese: "工作量很大。"},
		{English: "We need a significant amount of time.", Chinese: "我们需要相当多的时间。"},
		{English: "Pay the exact amount shown.", Chinese: "支付显示的确切金额。"},
		{English: "The amount of rainfall has increased.", Chinese: "降雨量增加了。"},
	},
	"ancient": {
		{English: "Rome is an ancient city.", Chinese: "罗马是一座古城。"},
		{English: "They studied ancient history.", Chinese: "他们研究古代历史。"},
		{English: "The ancient monument is well preserved.", Chinese: "这座古代纪念碑保存完好。"},
		{English: "Ancient civilizations had great achievements.", Chinese: "古代文明有伟大的成就。"},
		{English: "This is an ancient tradition.", Chinese: "这是一个古老的传统。"},
	},
	"angry": {
		{English: "He was angry about the delay.", Chinese: "他对延误感到愤怒。"},
		{English: "Don't be angry with me.", Chinese: "别生我的气。"},
		{English: "She looked angry when she heard the news.", Chinese: "听到这个消息时，她看起来很生气。"},
		{English: "Why are you so angry?", Chinese: "你为什么这么生气？"},
		{English: "His angry words hurt everyone.", Chinese: "他愤怒的话伤害了所有人。"},
	},
	"animal": {
		{English: "The zoo has many rare animals.", Chinese: "动物园有很多稀有动物。"},
		{English: "Dogs are loyal animals.", Chinese: "狗是忠诚的动物。"},
		{English: "She loves all kinds of animals.", Chinese: "她喜欢各种动物。"},
		{English: "Wild animals need protection.", Chinese: "野生动物需要保护。"},
		{English: "This is the largest animal on earth.", Chinese: "这是地球上最大的动物。"},
	},
	"another": {
		{English: "Would you like another cup of coffee?", Chinese: "你想再来一杯咖啡吗？"},
		{English: "Let's try another approach.", Chinese: "让我们试试另一种方法。"},
		{English: "She waited for another hour.", Chinese: "她又等了一个小时。"},
		{English: "One person after another left the room.", Chinese: "人们一个接一个地离开了房间。"},
		{English: "Can you give me another example?", Chinese: "你能再给我一个例子吗？"},
	},
	"answer": {
		{English: "Please answer my question.", Chinese: "请回答我的问题。"},
		{English: "She gave a good answer.", Chinese: "她给出了一个很好的回答。"},
		{English: "I don't know the answer.", Chinese: "我不知道答案。"},
		{English: "The answer is simple.", Chinese: "答案很简单。"},
		{English: "He answered the phone quickly.", Chinese: "他很快接了电话。"},
	},
	"appear": {
		{English: "She appeared at the party unexpectedly.", Chinese: "她意外地出现在聚会上。"},
		{English: "It appears that it will rain.", Chinese: "看起来要下雨了。"},
		{English: "Stars appear in the night sky.", Chinese: "星星出现在夜空中。"},
		{English: "He appears to be happy.", Chinese: "他看起来很开心。"},
		{English: "A new menu appears when you click.", Chinese: "点击时会出现一个新菜单。"},
	},
	"area": {
		{English: "This is a residential area.", Chinese: "这是一个住宅区。"},
		{English: "The area covers 100 square kilometers.", Chinese: "这个区域覆盖100平方公里。"},
		{English: "We need to improve this area.", Chinese: "我们需要改善这个区域。"},
		{English: "There is a large parking area nearby.", Chinese: "附近有一个很大的停车区。"},
		{English: "She is an expert in this area.", Chinese: "她是这个领域的专家。"},
	},
	"argue": {
		{English: "They argued about politics all night.", Chinese: "他们整晚都在争论政治。"},
		{English: "Don't argue with your parents.", Chinese: "不要和父母争吵。"},
		{English: "She argued that the plan was flawed.", Chinese: "她认为这个计划有缺陷。"},
		{English: "He likes to argue for fun.", Chinese: "他喜欢为了好玩而争论。"},
		{English: "We need to argue our case clearly.", Chinese: "我们需要清楚地陈述我们的观点。"},
	},
	"arm": {
		{English: "She broke her arm in the fall.", Chinese: "她摔倒时摔断了手臂。"},
		{English: "He stretched out his arm to help.", Chinese: "他伸出手臂去帮忙。"},
		{English: "The army is well armed.", Chinese: "军队装备精良。"},
		{English: "She folded her arms across her chest.", Chinese: "她双臂抱胸。"},
		{English: "Please arm yourself with patience.", Chinese: "请用耐心武装自己。"},
	},
	"army": {
		{English: "He joined the army at 18.", Chinese: "他18岁参军了。"},
		{English: "The army won the battle.", Chinese: "军队赢得了这场战斗。"},
		{English: "An army of ants marched across the floor.", Chinese: "一群蚂蚁在地板上行进。"},
		{English: "She has a standing army of supporters.", Chinese: "她有一大批坚定的支持者。"},
		{English: "The army protects the country.", Chinese: "军队保卫国家。"},
	},
	"around": {
		{English: "The sun is around the earth.", Chinese: "太阳绕着地球转（古时观点）。"},
		{English: "She looked around the room.", Chinese: "她环顾房间。"},
		{English: "It takes about an hour to walk around the lake.", Chinese: "绕湖走大约需要一个小时。"},
		{English: "People gathered around the fire.", Chinese: "人们聚集在火堆周围。"},
		{English: "I'll be around if you need me.", Chinese: "如果你需要我，我就在附近。"},
	},
	"arrive": {
		{English: "We will arrive at 5 o'clock.", Chinese: "我们将在5点到达。"},
		{English: "She arrived early for the meeting.", Chinese: "她开会到得很早。"},
		{English: "The train arrived on time.", Chinese: "火车准时到达。"},
		{English: "When did you arrive here?", Chinese: "你什么时候到这儿的？"},
		{English: "The package finally arrived today.", Chinese: "包裹今天终于到了。"},
	},
	"art": {
		{English: "She has a passion for art.", Chinese: "她对艺术充满热情。"},
		{English: "This museum displays beautiful art.", Chinese: "这个博物馆展示精美的艺术品。"},
		{English: "Painting is a form of art.", Chinese: "绘画是一种艺术形式。"},
		{English: "He studied art in college.", Chinese: "他在大学学习艺术。"},
		{English: "Music and dance are also arts.", Chinese: "音乐和舞蹈也是艺术。"},
	},
	"article": {
		{English: "I read an interesting article today.", Chinese: "我今天读了一篇有趣的文章。"},
		{English: "She wrote an article for the newspaper.", Chinese: "她为报纸写了一篇文章。"},
		{English: "The article discusses climate change.", Chinese: "这篇文章讨论气候变化。"},
		{English: "Please read the article carefully.", Chinese: "请仔细阅读这篇文章。"},
		{English: "The article was published last week.", Chinese: "这篇文章上周发表了。"},
	},
	"artist": {
		{English: "She is a talented artist.", Chinese: "她是一位有才华的艺术家。"},
		{English: "The artist painted a beautiful portrait.", Chinese: "艺术家画了一幅美丽的肖像。"},
		{English: "Many artists struggle financially.", Chinese: "许多艺术家在财务上很困难。"},
		{English: "He wants to become a famous artist.", Chinese: "他想成为著名的艺术家。"},
		{English: "The artist's work is displayed in the gallery.", Chinese: "艺术家的作品在画廊展出。"},
	},
	"as": {
		{English: "She works as a teacher.", Chinese: "她是一名教师。"},
		{English: "As I mentioned, this is important.", Chinese: "正如我提到的，这很重要。"},
		{English: "Do as I say.", Chinese: "照我说的做。"},
		{English: "He is as tall as his father.", Chinese: "他和他的父亲一样高。"},
		{English: "As time passed, things changed.", Chinese: "随着时间的推移，事情发生了变化。"},
	},
	"ask": {
		{English: "Can I ask you a question?", Chinese: "我可以问你一个问题吗？"},
		{English: "She asked for help.", Chinese: "她请求帮助。"},
		{English: "Don't ask me why.", Chinese: "别问我为什么。"},
		{English: "He asked her to marry him.", Chinese: "他向她求婚。"},
		{English: "Please ask the teacher for permission.", Chinese: "请向老师申请许可。"},
	},
	"at": {
		{English: "We met at the station.", Chinese: "我们在车站见面。"},
		{English: "She arrived at noon.", Chinese: "她中午到达。"},
		{English: "Look at the blackboard.", Chinese: "看黑板。"},
		{English: "He is good at math.", Chinese: "他擅长数学。"},
		{English: "The party starts at 8 PM.", Chinese: "聚会晚上8点开始。"},
	},
	"attack": {
		{English: "The dog attacked the stranger.", Chinese: "狗袭击了陌生人。"},
		{English: "The army launched an attack.", Chinese: "军队发动了攻击。"},
		{English: "He suffered a heart attack.", Chinese: "他心脏病发作。"},
		{English: "The virus attacks the immune system.", Chinese: "病毒攻击免疫系统。"},
		{English: "We must defend against potential attacks.", Chinese: "我们必须防御潜在攻击。"},
	},
	"attempt": {
		{English: "She made an attempt to climb the mountain.", Chinese: "她尝试攀登那座山。"},
		{English: "His first attempt failed.", Chinese: "他的第一次尝试失败了。"},
		{English: "Don't attempt to do it alone.", Chinese: "不要尝试独自做这件事。"},
		{English: "The rescue attempt was successful.", Chinese: "救援尝试成功了。"},
		{English: "Another attempt will be made tomorrow.", Chinese: "明天将再次尝试。"},
	},
	"attend": {
		{English: "Please attend the meeting.", Chinese: "请参加会议。"},
		{English: "She attends university in London.", Chinese: "她在伦敦上大学。"},
		{English: "Did you attend the party?", Chinese: "你参加聚会了吗？"},
		{English: "The doctor attended to the patient.", Chinese: "医生治疗病人。"},
		{English: "We need to attend to this matter.", Chinese: "我们需要处理这件事。"},
	},
	"attention": {
		{English: "Please pay attention to what I'm saying.", Chinese: "请注意我说的话。"},
		{English: "The child needs more attention.", Chinese: "这个孩子需要更多关注。"},
		{English: "Don't distract my attention.", Chinese: "不要分散我的注意力。"},
		{English: "Her dress attracted a lot of attention.", Chinese: "她的连衣裙吸引了很多目光。"},
		{English: "This matter requires your immediate attention.", Chinese: "这件事需要你立即关注。"},
	},
	"attitude": {
		{English: "She has a positive attitude.", Chinese: "她有积极的态度。"},
		{English: "His attitude towards work is admirable.", Chinese: "他对工作的态度值得钦佩。"},
		{English: "We need to change our attitude.", Chinese: "我们需要改变态度。"},
		{English: "A good attitude leads to success.", Chinese: "良好的态度导致成功。"},
		{English: "Don't give me that attitude.", Chinese: "别给我那种态度。"},
	},
	"attract": {
		{English: "The beautiful garden attracts many visitors.", Chinese: "美丽的花园吸引了很多游客。"},
		{English: "He tried to attract her attention.", Chinese: "他试图引起她的注意。"},
		{English: "Flowers attract bees.", Chinese: "花朵吸引蜜蜂。"},
		{English: "The company wants to attract more customers.", Chinese: "公司想吸引更多客户。"},
		{English: "Her charm attracts people.", Chinese: "她的魅力吸引人们。"},
	},
	"audience": {
		{English: "The audience applauded loudly.", Chinese: "观众热烈鼓掌。"},
		{English: "She spoke to a large audience.", Chinese: "她向大批观众讲话。"},
		{English: "The TV show has a wide audience.", Chinese: "这个电视节目有广泛的观众。"},
		{English: "The audience laughed at his jokes.", Chinese: "观众被他的笑话逗笑了。"},
		{English: "Please address the audience directly.", Chinese: "请直接对观众讲话。"},
	},
	"author": {
		{English: "She is the author of this book.", Chinese: "她是这本书的作者。"},
		{English: "The author signed copies of his book.", Chinese: "作者在他的书上签名。"},
		{English: "Many famous authors lived here.", Chinese: "许多著名作家曾住在这里。"},
		{English: "He wants to be a successful author.", Chinese: "他想成为一名成功的作家。"},
		{English: "The author's writing style is unique.", Chinese: "这位作者的写作风格很独特。"},
	},
	"available": {
		{English: "Is this seat available?", Chinese: "这个座位有人坐吗？"},
		{English: "She is available for meetings tomorrow.", Chinese: "她明天有空开会。"},
		{English: "The product is not available in stores.", Chinese: "这种商品在商店买不到。"},
		{English: "Do you have any available rooms?", Chinese: "你们有空的房间吗？"},
		{English: "All information is available online.", Chinese: "所有信息都可以在网上查到。"},
	},
	"average": {
		{English: "The average temperature is 25 degrees.", Chinese: "平均气温是25度。"},
		{English: "He is of average height.", Chinese: "他的身高中等。"},
		{English: "The class scored above average.", Chinese: "班级成绩高于平均水平。"},
		{English: "On average, we spend two hours a day on homework.", Chinese: "平均来说，我们每天花两小时做作业。"},
		{English: "This is just an average result.", Chinese: "这只是一个普通的结果。"},
	},
	"avoid": {
		{English: "Try to avoid unnecessary risks.", Chinese: "尽量避免不必要的风险。"},
		{English: "She avoids eating meat.", Chinese: "她避免吃肉。"},
		{English: "We should avoid making the same mistake.", Chinese: "我们应该避免犯同样的错误。"},
		{English: "He avoided answering the question.", Chinese: "他避而不答这个问题。"},
		{English: "To avoid traffic, leave early.", Chinese: "为了避免堵车，早点出发。"},
	},
	"awake": {
		{English: "I was still awake at midnight.", Chinese: "午夜时我还醒着。"},
		{English: "Please stay awake while driving.", Chinese: "开车时请保持清醒。"},
		{English: "The noise kept him awake.", Chinese: "噪音让他睡不着。"},
		{English: "She lay awake thinking about the problem.", Chinese: "她躺在床上思考问题，睡不着。"},
		{English: "The baby is finally awake.", Chinese: "宝宝终于醒了。"},
	},
	"away": {
		{English: "He went away on a trip.", Chinese: "他去旅行了。"},
		{English: "Keep the children away from the fire.", Chinese: "让孩子远离火。"},
		{English: "She lives far away from here.", Chinese: "她住得离这里很远。"},
		{English: "Don't throw it away.", Chinese: "别把它扔掉。"},
		{English: "The summer is still months away.", Chinese: "夏天还有好几个月呢。"},
	},
}
